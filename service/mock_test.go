package service

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/kinetic-cards/portfolio/config"
	githubMock "github.com/migueleliasweb/go-github-mock/src/mock"
	"golang.org/x/time/rate"
)

// mockResponses describes what the mocked github API answers
// a non zero status replaces the response by an error with that status
type mockResponses struct {
	profile         github.User
	profileStatus   int
	repos           []*github.Repository
	reposStatus     int
	languages       map[string]string // repository name -> raw json languages object
	languagesStatus map[string]int    // repository name -> error status
	rateLimited     bool              // every endpoint answers with a github rate limit error
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newMockedGithubClient(t *testing.T, m mockResponses) *github.Client {
	t.Helper()

	write := func(w http.ResponseWriter, status int, body []byte) {
		if m.rateLimited {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
			return
		}

		if status != 0 {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"mocked error"}`))
			return
		}

		if _, err := w.Write(body); err != nil {
			t.Error("unable to configure mock http client")
		}
	}

	mockedHTTPClient := githubMock.NewMockedHTTPClient(
		githubMock.WithRequestMatchHandler(
			githubMock.GetUsersByUsername,
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				write(w, m.profileStatus, githubMock.MustMarshal(m.profile))
			}),
		),
		githubMock.WithRequestMatchHandler(
			githubMock.GetUsersReposByUsername,
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				write(w, m.reposStatus, githubMock.MustMarshal(m.repos))
			}),
		),
		githubMock.WithRequestMatchHandler(
			githubMock.GetReposLanguagesByOwnerByRepo,
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// path is /repos/{owner}/{repo}/languages
				parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
				name := parts[len(parts)-2]

				body, found := m.languages[name]
				if !found {
					body = "{}"
				}

				write(w, m.languagesStatus[name], []byte(body))
			}),
		),
	)

	return github.NewClient(mockedHTTPClient)
}

func newTestGithubService(t *testing.T, m mockResponses, rateLimit int, isolate bool) GithubService {
	t.Helper()

	conf := config.GetDefault()
	conf.Github.IsolateLanguageFailures = isolate

	mockedRateLimiter := rate.NewLimiter(rate.Every(time.Hour), rateLimit)
	return NewGithubService(*conf, newMockedGithubClient(t, m), mockedRateLimiter)
}

func mockRepository(name string, language *string, fork bool) *github.Repository {
	return &github.Repository{
		Name:            github.String(name),
		Owner:           &github.User{Login: github.String("octocat")},
		Description:     github.String(name + " description"),
		Language:        language,
		StargazersCount: github.Int(3),
		ForksCount:      github.Int(1),
		Size:            github.Int(2048),
		UpdatedAt:       &github.Timestamp{Time: testNow.Add(-3 * time.Hour)},
		Fork:            github.Bool(fork),
		HTMLURL:         github.String("https://github.com/octocat/" + name),
	}
}
