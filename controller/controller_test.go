package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/render"
	"github.com/kinetic-cards/portfolio/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePortfolioService records the calls and answers with the configured values
type fakePortfolioService struct {
	githubData   model.GithubData
	githubErr    error
	pageErr      error
	lastUsername string
	lastPage     string
	lastQuery    model.PanelQuery
}

func (f *fakePortfolioService) LoadGithubData(_ context.Context, _ render.Target, _ string) error {
	return nil
}

func (f *fakePortfolioService) GetGithubData(_ context.Context, username string) (model.GithubData, error) {
	f.lastUsername = username
	return f.githubData, f.githubErr
}

func (f *fakePortfolioService) RenderPage(_ context.Context, pageName, requestPath string, query model.PanelQuery) (render.PageData, error) {
	f.lastPage = pageName
	f.lastQuery = query

	if f.pageErr != nil {
		return render.PageData{}, f.pageErr
	}

	return render.PageData{
		Title:    "Portfolio",
		Nav:      ui.NavLinks("", requestPath, []string{"Home"}, []string{"index.html"}),
		Sections: []render.Section{{ID: config.ContainerRepoGrid, HTML: "<p>grid</p>"}},
	}, nil
}

func (f *fakePortfolioService) Projects(category string) []model.Project {
	return []model.Project{{Name: "Only " + category, Category: category}}
}

func newTestRouter(svc *fakePortfolioService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := config.GetDefault()
	conf.Github.Username = "octocat"

	return NewRouter(
		NewAPIController(*conf, svc),
		NewPageController(svc, ui.WithoutDelays(ui.RunTestsSequence)),
	)
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	return w
}

func TestGetGithubData(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		githubErr        error
		expectedStatus   int
		expectedUsername string
		expectedCode     string
	}{
		{
			name:             "Default username",
			target:           "/api/github",
			expectedStatus:   http.StatusOK,
			expectedUsername: "octocat",
		},
		{
			name:             "Username from query",
			target:           "/api/github?username=someone",
			expectedStatus:   http.StatusOK,
			expectedUsername: "someone",
		},
		{
			name:             "Rate limit reached",
			target:           "/api/github",
			githubErr:        model.ErrRateLimitReached,
			expectedStatus:   http.StatusTooManyRequests,
			expectedUsername: "octocat",
			expectedCode:     "RATE_LIMIT_REACHED",
		},
		{
			name:             "Fetch error",
			target:           "/api/github",
			githubErr:        model.ErrFetchError,
			expectedStatus:   http.StatusBadGateway,
			expectedUsername: "octocat",
			expectedCode:     "FETCH_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePortfolioService{
				githubData: model.GithubData{
					Profile: model.GithubProfile{Followers: 9},
					Repositories: []model.GithubRepository{
						{Name: "kinetic", Languages: model.LanguageBreakdown{{Name: "Go", Bytes: 10}, {Name: "CSS", Bytes: 2}}},
					},
				},
				githubErr: tt.githubErr,
			}

			w := serve(newTestRouter(svc), tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedUsername, svc.lastUsername)

			if tt.expectedCode != "" {
				var apiErr model.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.expectedCode, apiErr.Code)
				return
			}

			assert.Contains(t, w.Body.String(), `"languages":{"Go":10,"CSS":2}`)
			assert.Contains(t, w.Body.String(), `"followers":9`)
		})
	}
}

func TestGetProjects(t *testing.T) {
	w := serve(newTestRouter(&fakePortfolioService{}), "/api/projects?category=AI-ML")

	assert.Equal(t, http.StatusOK, w.Code)

	var projects []model.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "ai-ml", projects[0].Category)
}

func TestGetPage(t *testing.T) {
	tests := []struct {
		target       string
		expectedPage string
	}{
		{target: "/", expectedPage: "index"},
		{target: "/index.html", expectedPage: "index"},
		{target: "/projects.html?category=qa-frameworks", expectedPage: "projects"},
		{target: "/github", expectedPage: "github"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := &fakePortfolioService{}
			w := serve(newTestRouter(svc), tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedPage, svc.lastPage)
			assert.Contains(t, w.Body.String(), `<section id="repo-grid" class="kc-section"><p>grid</p></section>`)
			assert.Contains(t, w.Body.String(), "<title>Portfolio</title>")
		})
	}

	svc := &fakePortfolioService{}
	serve(newTestRouter(svc), "/projects.html?category=qa-frameworks")
	assert.Equal(t, "qa-frameworks", svc.lastQuery.Category)
}

func TestGetPageUnknown(t *testing.T) {
	svc := &fakePortfolioService{pageErr: fmt.Errorf("page %q: %w", "missing", model.ErrUnknownPage)}
	w := serve(newTestRouter(svc), "/missing.html")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_PAGE")
}

func TestRunTestsDemo(t *testing.T) {
	w := serve(newTestRouter(&fakePortfolioService{}), "/demo/run-tests")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event:status")
	assert.Contains(t, w.Body.String(), "Initializing test runner...")
	assert.Contains(t, w.Body.String(), "Allure report generated")
}

func TestPageName(t *testing.T) {
	assert.Equal(t, "index", PageName(""))
	assert.Equal(t, "index", PageName("/"))
	assert.Equal(t, "projects", PageName("projects.html"))
	assert.Equal(t, "github", PageName("github"))
}
