package render

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/ui"
)

// maxDisplayedLanguages is the number of languages shown in a repository language bar
const maxDisplayedLanguages = 4

// Renderer turns github and project data into the html of the page containers
type Renderer struct {
	palette Palette
	now     func() time.Time
}

type repoCard struct {
	Name         string
	URL          string
	Description  string
	Stars        int
	Forks        int
	Size         string
	UpdatedAgo   string
	LanguageSlot template.HTML
}

type primaryLanguage struct {
	Name  string
	Color string
}

// LanguageSegment is one language of a repository language bar
type LanguageSegment struct {
	Name    string
	Color   string
	Percent string
}

type projectTag struct {
	Name  string
	Color string
}

type projectCard struct {
	Name        string
	Href        string
	Description string
	Category    string
	Tags        []projectTag
	Hidden      bool
}

// PageData is everything needed to render a whole page
type PageData struct {
	Title    string
	BasePath string
	Nav      []ui.NavLink
	Filters  []Filter
	Sections []Section
}

type Filter struct {
	Category string
	Active   bool
}

type Section struct {
	ID   string
	HTML template.HTML
}

// RepoGrid keeps the rendered repository cards so the language slot
// of each repository can be replaced once languages are loaded
type RepoGrid struct {
	cards []repoCard
	index map[string]int
}

func NewRenderer(palette Palette) *Renderer {
	return &Renderer{
		palette: palette,
		now:     time.Now,
	}
}

// WithClock returns a copy of the renderer using the given clock for relative times
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	return &Renderer{
		palette: r.palette,
		now:     now,
	}
}

func (r *Renderer) Palette() Palette {
	return r.palette
}

// RenderProfileStats fills the container with the profile counters
func (r *Renderer) RenderProfileStats(container Container, profile model.GithubProfile) error {
	content, err := execute("profile-stats", profile)
	if err != nil {
		return err
	}

	container.SetHTML(content)
	return nil
}

// RenderRepos fills the container with one card per non fork repository
// the returned grid is nil when there is nothing to display
func (r *Renderer) RenderRepos(container Container, repos []model.GithubRepository) (*RepoGrid, error) {
	filtered := model.WithoutForks(repos)

	if len(filtered) == 0 {
		content, err := execute("repo-empty", nil)
		if err != nil {
			return nil, err
		}

		container.SetHTML(content)
		return nil, nil
	}

	now := r.now()
	grid := &RepoGrid{
		cards: make([]repoCard, 0, len(filtered)),
		index: make(map[string]int, len(filtered)),
	}

	for _, repo := range filtered {
		card := repoCard{
			Name:        repo.Name,
			URL:         repo.URL,
			Description: "No description provided",
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Size:        FormatSize(repo.SizeKB),
			UpdatedAgo:  TimeAgo(now, repo.UpdatedAt),
		}

		if repo.Description != nil && *repo.Description != "" {
			card.Description = *repo.Description
		}

		var primary *primaryLanguage
		if repo.Language != nil && *repo.Language != "" {
			primary = &primaryLanguage{Name: *repo.Language, Color: r.palette.Color(*repo.Language)}
		}

		slot, err := execute("repo-primary-lang", primary)
		if err != nil {
			return nil, err
		}

		card.LanguageSlot = slot
		grid.index[repo.Name] = len(grid.cards)
		grid.cards = append(grid.cards, card)
	}

	if err := grid.writeTo(container); err != nil {
		return nil, err
	}

	return grid, nil
}

// UpdateRepoLanguages replaces the language slot of every repository having a non empty breakdown
// then writes the grid back to the container
func (r *Renderer) UpdateRepoLanguages(container Container, grid *RepoGrid, languages map[string]model.LanguageBreakdown) error {
	if grid == nil {
		return nil
	}

	updated := false

	for name, breakdown := range languages {
		i, found := grid.index[name]
		if !found || len(breakdown) == 0 {
			continue
		}

		slot, err := execute("repo-lang-bar", r.LanguageBar(breakdown))
		if err != nil {
			return err
		}

		grid.cards[i].LanguageSlot = slot
		updated = true
	}

	if !updated {
		return nil
	}

	return grid.writeTo(container)
}

// LanguageBar computes the segments displayed for a breakdown
// percentages use the total of the whole breakdown, only the first four languages are kept
// so the displayed percentages may not sum to 100
func (r *Renderer) LanguageBar(breakdown model.LanguageBreakdown) []LanguageSegment {
	total := breakdown.Total()
	top := breakdown.Top(maxDisplayedLanguages)
	segments := make([]LanguageSegment, 0, len(top))

	for _, l := range top {
		segments = append(segments, LanguageSegment{
			Name:    l.Name,
			Color:   r.palette.Color(l.Name),
			Percent: Percent(l.Bytes, total),
		})
	}

	return segments
}

// ShowAPIError replaces the repositories grid with the loading error message, if the page has one
func (r *Renderer) ShowAPIError(target Target) error {
	container, found := target.Container(config.ContainerRepoGrid)
	if !found {
		return nil
	}

	content, err := execute("repo-error", nil)
	if err != nil {
		return err
	}

	container.SetHTML(content)
	return nil
}

// RenderLocalProjects fills the container with the project cards
// cards outside the active category are rendered hidden
func (r *Renderer) RenderLocalProjects(container Container, projects []model.Project, basePath, category string) error {
	cards := make([]projectCard, 0, len(projects))

	for _, p := range projects {
		tags := make([]projectTag, 0, len(p.Tags))
		for _, tag := range p.Tags {
			tags = append(tags, projectTag{Name: tag, Color: r.palette.Color(tag)})
		}

		cards = append(cards, projectCard{
			Name:        p.Name,
			Href:        basePath + p.Path,
			Description: p.Description,
			Category:    p.Category,
			Tags:        tags,
			Hidden:      !ui.FilterVisible(category, p.Category),
		})
	}

	content, err := execute("project-grid", cards)
	if err != nil {
		return err
	}

	container.SetHTML(content)
	return nil
}

// RenderPage writes the whole page html
func RenderPage(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}

// Len returns the number of repository cards
func (g *RepoGrid) Len() int {
	if g == nil {
		return 0
	}

	return len(g.cards)
}

func (g *RepoGrid) writeTo(container Container) error {
	content, err := execute("repo-grid", g.cards)
	if err != nil {
		return err
	}

	container.SetHTML(content)
	return nil
}

func execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}
