package service

import (
	"context"
	"fmt"

	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/render"
	"github.com/kinetic-cards/portfolio/ui"
	log "github.com/sirupsen/logrus"
)

type PortfolioService interface {
	LoadGithubData(ctx context.Context, target render.Target, username string) error
	GetGithubData(ctx context.Context, username string) (model.GithubData, error)
	RenderPage(ctx context.Context, pageName, requestPath string, query model.PanelQuery) (render.PageData, error)
	Projects(category string) []model.Project
}

type portfolioService struct {
	githubService GithubService
	renderer      *render.Renderer
	config        config.Config
}

func NewPortfolioService(config config.Config, githubService GithubService, renderer *render.Renderer) PortfolioService {
	return portfolioService{
		githubService: githubService,
		renderer:      renderer,
		config:        config,
	}
}

// LoadGithubData fills the github panels of the target, if it has any
// profile and repositories are loaded together: when one of them fails nothing is rendered
// and the repositories grid displays an error message instead
func (s portfolioService) LoadGithubData(ctx context.Context, target render.Target, username string) error {
	statsEl, hasStats := target.Container(config.ContainerGithubStats)
	gridEl, hasGrid := target.Container(config.ContainerRepoGrid)

	if !hasStats && !hasGrid {
		return nil
	}

	profile, repos, err := s.githubService.FetchProfileAndRepositories(ctx, username)
	if err != nil {
		return s.showError(target, username, err)
	}

	if hasStats {
		if err := s.renderer.RenderProfileStats(statsEl, profile); err != nil {
			return err
		}
	}

	if !hasGrid {
		return nil
	}

	grid, err := s.renderer.RenderRepos(gridEl, repos)
	if err != nil {
		return err
	}

	// language requests target repositories already in the grid
	if grid.Len() == 0 {
		return nil
	}

	languages, err := s.githubService.GetRepositoriesLanguages(ctx, repos)
	if err != nil {
		return s.showError(target, username, err)
	}

	return s.renderer.UpdateRepoLanguages(gridEl, grid, languages)
}

// GetGithubData returns the merged profile, repositories and languages, forks excluded
func (s portfolioService) GetGithubData(ctx context.Context, username string) (model.GithubData, error) {
	profile, repos, err := s.githubService.FetchProfileAndRepositories(ctx, username)
	if err != nil {
		return model.GithubData{}, err
	}

	repos = model.WithoutForks(repos)

	languages, err := s.githubService.GetRepositoriesLanguages(ctx, repos)
	if err != nil {
		return model.GithubData{}, err
	}

	for i := range repos {
		repos[i].Languages = languages[repos[i].Name]
	}

	return model.GithubData{
		Profile:      profile,
		Repositories: repos,
	}, nil
}

// RenderPage renders every container of a configured page variant
func (s portfolioService) RenderPage(ctx context.Context, pageName, requestPath string, query model.PanelQuery) (render.PageData, error) {
	page, found := s.config.Page(pageName)
	if !found {
		return render.PageData{}, fmt.Errorf("page %q: %w", pageName, model.ErrUnknownPage)
	}

	category := query.ResolveCategory()
	doc := render.NewDocument(page.BasePath, page.Containers...)

	// github errors are already displayed in the page
	if err := s.LoadGithubData(ctx, doc, query.ResolveUsername(s.config.Github.Username)); err != nil {
		log.WithError(err).WithField("page", pageName).Debug("page rendered without github data")
	}

	data := render.PageData{
		Title:    page.Title,
		BasePath: page.BasePath,
		Nav:      s.navLinks(page.BasePath, requestPath),
	}

	if projectsEl, found := doc.Container(config.ContainerProjectGrid); found {
		if err := s.renderer.RenderLocalProjects(projectsEl, s.config.Site.Projects, doc.BasePath(), category); err != nil {
			return render.PageData{}, err
		}

		data.Filters = s.filters(category)
	}

	for _, el := range doc.Elements() {
		data.Sections = append(data.Sections, render.Section{ID: el.ID(), HTML: el.HTML()})
	}

	return data, nil
}

// Projects returns the local projects of the given category, all of them for "all"
func (s portfolioService) Projects(category string) []model.Project {
	projects := make([]model.Project, 0, len(s.config.Site.Projects))

	for _, p := range s.config.Site.Projects {
		if ui.FilterVisible(category, p.Category) {
			projects = append(projects, p)
		}
	}

	return projects
}

func (s portfolioService) showError(target render.Target, username string, err error) error {
	log.WithError(err).WithField("username", username).Error("github API error")

	if renderErr := s.renderer.ShowAPIError(target); renderErr != nil {
		log.WithError(renderErr).Error("unable to render github error message")
	}

	return err
}

func (s portfolioService) navLinks(basePath, requestPath string) []ui.NavLink {
	labels := make([]string, 0, len(s.config.Site.NavLinks))
	hrefs := make([]string, 0, len(s.config.Site.NavLinks))

	for _, l := range s.config.Site.NavLinks {
		labels = append(labels, l.Label)
		hrefs = append(hrefs, l.Href)
	}

	return ui.NavLinks(basePath, requestPath, labels, hrefs)
}

func (s portfolioService) filters(active string) []render.Filter {
	categories := make([]string, 0, len(s.config.Site.Projects))
	for _, p := range s.config.Site.Projects {
		categories = append(categories, p.Category)
	}

	filters := make([]render.Filter, 0, len(categories)+1)
	for _, c := range ui.FilterCategories(categories) {
		filters = append(filters, render.Filter{Category: c, Active: c == active})
	}

	return filters
}
