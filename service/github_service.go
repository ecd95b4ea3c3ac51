package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type GithubService interface {
	FetchProfile(ctx context.Context, username string) (model.GithubProfile, error)
	FetchLastHundredRepositories(ctx context.Context, username string) ([]model.GithubRepository, error)
	FetchProfileAndRepositories(ctx context.Context, username string) (model.GithubProfile, []model.GithubRepository, error)
	GetRepositoriesLanguages(ctx context.Context, repos []model.GithubRepository) (map[string]model.LanguageBreakdown, error)
	FetchLanguagesForSingleRepository(ctx context.Context, r model.GithubRepository, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- model.GithubRepositoryLanguages) error

	HandleRequestErrors(err error) error
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// every request made to github consumes one token of the local rate limiter
// unauthenticated clients are allowed 60 calls per hour, authenticated ones 5000
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

// FetchProfile loads the public counters of a github account
func (s githubService) FetchProfile(ctx context.Context, username string) (model.GithubProfile, error) {
	if err := s.reserve(1); err != nil {
		return model.GithubProfile{}, err
	}

	log.WithField("username", username).Debug("fetch github profile")

	user, _, err := s.githubClient.Users.Get(ctx, username)
	if err != nil {
		return model.GithubProfile{}, s.HandleRequestErrors(err)
	}

	return model.GithubProfile{
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// FetchLastHundredRepositories loads the 100 most recently updated repositories of an account
// forks are returned too, callers decide whether to display them
func (s githubService) FetchLastHundredRepositories(ctx context.Context, username string) ([]model.GithubRepository, error) {
	if err := s.reserve(1); err != nil {
		return []model.GithubRepository{}, err
	}

	log.WithField("username", username).Info("fetch last 100 updated repositories from github")

	repos, _, err := s.githubClient.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: 100,
		},
	})

	if err != nil {
		return []model.GithubRepository{}, s.HandleRequestErrors(err)
	}

	repositories := make([]model.GithubRepository, 0, len(repos))

	for _, r := range repos {
		if r == nil || r.GetName() == "" {
			log.WithField("username", username).Debug("repository found with invalid information")
			return []model.GithubRepository{}, model.ErrInvalidDataFound
		}

		owner := r.GetOwner().GetLogin()
		if owner == "" {
			owner = username
		}

		repositories = append(repositories, model.GithubRepository{
			Name:        r.GetName(),
			Owner:       owner,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			SizeKB:      r.GetSize(),
			UpdatedAt:   r.GetUpdatedAt().Time,
			Fork:        r.GetFork(),
			URL:         r.GetHTMLURL(),
		})
	}

	return repositories, nil
}

// FetchProfileAndRepositories runs both requests in parallel
// if one of them fails, nothing is returned
func (s githubService) FetchProfileAndRepositories(ctx context.Context, username string) (model.GithubProfile, []model.GithubRepository, error) {
	var (
		profile    model.GithubProfile
		repos      []model.GithubRepository
		profileErr error
		reposErr   error
	)

	swg := sizedwaitgroup.New(2)

	swg.Add()
	go func() {
		defer swg.Done()
		profile, profileErr = s.FetchProfile(ctx, username)
	}()

	swg.Add()
	go func() {
		defer swg.Done()
		repos, reposErr = s.FetchLastHundredRepositories(ctx, username)
	}()

	swg.Wait()

	if profileErr != nil || reposErr != nil {
		log.WithFields(log.Fields{
			"username":     username,
			"profileError": profileErr,
			"reposError":   reposErr,
		}).Error("unable to load github profile and repositories")

		if profileErr != nil {
			return model.GithubProfile{}, []model.GithubRepository{}, profileErr
		}

		return model.GithubProfile{}, []model.GithubRepository{}, reposErr
	}

	return profile, repos, nil
}

// GetRepositoriesLanguages fetches the languages of every non fork repository in parallel
// results are keyed by repository name
func (s githubService) GetRepositoriesLanguages(ctx context.Context, repos []model.GithubRepository) (map[string]model.LanguageBreakdown, error) {
	targets := model.WithoutForks(repos)
	langMap := make(map[string]model.LanguageBreakdown, len(targets))

	if len(targets) == 0 {
		return langMap, nil
	}

	// consume all the requests at once, to avoid loading languages for only a part of repositories
	if err := s.reserve(len(targets)); err != nil {
		log.WithField("repositoriesToLoad", len(targets)).Warning("not enough requests in rate limiter to load languages for all repositories")
		return nil, err
	}

	parallelTasks := s.config.Tasks.MaxParallelTasksAllowed
	if parallelTasks <= 0 {
		parallelTasks = len(targets)
	}

	swg := sizedwaitgroup.New(parallelTasks)
	results := make(chan model.GithubRepositoryLanguages, len(targets))

	for _, r := range targets {
		swg.Add()
		go s.FetchLanguagesForSingleRepository(ctx, r, &swg, results) //nolint:errcheck // errors are read from the channel
	}

	log.Debug("waiting for all languages requests to be finished")
	swg.Wait()
	close(results)

	var firstErr error

	for result := range results {
		if result.Err != nil {
			if s.config.Github.IsolateLanguageFailures {
				log.WithError(result.Err).WithField("repository", result.RepositoryName).Warning("languages not loaded for repository, language bar skipped")
				continue
			}

			if firstErr == nil {
				firstErr = result.Err
			}

			continue
		}

		langMap[result.RepositoryName] = result.Languages
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return langMap, nil
}

// FetchLanguagesForSingleRepository get the languages for a specific repository and send them to the channel
// the rate limiter is not checked here, it is done by GetRepositoriesLanguages for the whole batch
func (s githubService) FetchLanguagesForSingleRepository(ctx context.Context, r model.GithubRepository, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- model.GithubRepositoryLanguages) error {
	defer swg.Done()

	log.WithFields(log.Fields{
		"owner":      r.Owner,
		"repository": r.Name,
	}).Debug("fetch languages for repository")

	// ListLanguages decodes into a map which loses the order returned by github
	// so the raw response is decoded into an ordered breakdown
	req, err := s.githubClient.NewRequest("GET", fmt.Sprintf("repos/%v/%v/languages", r.Owner, r.Name), nil)
	if err != nil {
		ch <- model.GithubRepositoryLanguages{RepositoryName: r.Name, Err: model.ErrFetchError}
		return model.ErrFetchError
	}

	var languages model.LanguageBreakdown

	if _, err := s.githubClient.Do(ctx, req, &languages); err != nil {
		err = s.HandleRequestErrors(err)
		ch <- model.GithubRepositoryLanguages{RepositoryName: r.Name, Err: err}
		return err
	}

	ch <- model.GithubRepositoryLanguages{RepositoryName: r.Name, Languages: languages}
	return nil
}

// HandleRequestErrors manage errors including github rate limit errors at the same location
// If error is a rate limit error, the local rate limiter is emptied to stay in sync with github
func (s githubService) HandleRequestErrors(err error) error {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError

	if errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr) {
		if reservation := s.githubRateLimiter.ReserveN(time.Now(), s.githubRateLimiter.Burst()); !reservation.OK() {
			return model.ErrRateLimiterError
		}

		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.ErrRateLimitReached
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return model.ErrFetchError
}

func (s githubService) reserve(requests int) error {
	if !s.githubRateLimiter.AllowN(time.Now(), requests) {
		log.WithField("requests", requests).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.ErrRateLimitReached
	}

	return nil
}
