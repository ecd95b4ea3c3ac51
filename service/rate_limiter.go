package service

import (
	"context"
	"time"

	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewGithubRateLimiter builds the local rate limiter from the limits reported by github
// tokens already used (by this or another client) are consumed so both stay in sync
// when limits can't be loaded, fallbackPerHour requests are allowed
func NewGithubRateLimiter(ctx context.Context, githubClient *github.Client, fallbackPerHour int) *rate.Limiter {
	log.Debug("loading current rate limit from github")

	rateLimits, _, err := githubClient.RateLimit.Get(ctx)
	if err != nil || rateLimits == nil || rateLimits.Core == nil {
		log.WithError(err).WithField("requestsPerHour", fallbackPerHour).Warning("unable to load current github rate limits, using fallback")
		return rate.NewLimiter(rate.Every(time.Hour/time.Duration(max(fallbackPerHour, 1))), max(fallbackPerHour, 1))
	}

	limit := max(rateLimits.Core.Limit, 1)
	used := min(max(limit-rateLimits.Core.Remaining, 0), limit)

	log.WithFields(log.Fields{
		"totalAvailable":    rateLimits.Core.Limit,
		"remainingRequests": rateLimits.Core.Remaining,
	}).Debug("will setup local rate limiter with rate limits infos from github")

	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(limit)), limit)
	rateLimiter.AllowN(time.Now(), used)

	return rateLimiter
}
