package render

import "html/template"

const profileStatsTemplate = `{{define "profile-stats"}}
<div class="kc-gh-stat">
  <span class="kc-gh-stat__val">{{.PublicRepos}}</span>
  <span class="kc-gh-stat__label">Repositories</span>
</div>
<div class="kc-gh-stat">
  <span class="kc-gh-stat__val">{{.Followers}}</span>
  <span class="kc-gh-stat__label">Followers</span>
</div>
<div class="kc-gh-stat">
  <span class="kc-gh-stat__val">{{.Following}}</span>
  <span class="kc-gh-stat__label">Following</span>
</div>
{{end}}`

const repoGridTemplate = `{{define "repo-empty"}}<p class="kc-gh-empty">No public repositories found.</p>{{end}}
{{define "repo-error"}}<p class="kc-gh-error">Unable to load repositories. GitHub API rate limit may be exceeded.</p>{{end}}
{{define "repo-primary-lang"}}{{if .}}<span class="kc-lang-dot" style="background:{{.Color}}"></span> {{.Name}}{{end}}{{end}}
{{define "repo-lang-bar"}}<div class="kc-lang-bar">{{range .}}<div class="kc-lang-bar__seg" style="width:{{.Percent}}%;background:{{.Color}}" title="{{.Name}} {{.Percent}}%"></div>{{end}}</div><div class="kc-lang-labels">{{range .}}<span class="kc-lang-label"><span class="kc-lang-dot" style="background:{{.Color}}"></span>{{.Name}} <span class="kc-lang-pct">{{.Percent}}%</span></span>{{end}}</div>{{end}}
{{define "repo-grid"}}{{range .}}
<a class="kc-repo kc-fade" href="{{.URL}}" target="_blank" rel="noopener noreferrer">
  <div class="kc-repo__header">
    <span class="kc-repo__icon" aria-hidden="true"></span>
    <span class="kc-repo__name">{{.Name}}</span>
  </div>
  <p class="kc-repo__desc">{{.Description}}</p>
  <div class="kc-repo__meta">
    <div class="kc-repo__lang" data-repo="{{.Name}}">{{.LanguageSlot}}</div>
    <div class="kc-repo__stats">
      {{- if gt .Stars 0}}<span class="kc-repo__stat kc-repo__stars">{{.Stars}}</span>{{end}}
      {{- if gt .Forks 0}}<span class="kc-repo__stat kc-repo__forks">{{.Forks}}</span>{{end}}
      <span class="kc-repo__stat kc-repo__size">{{.Size}}</span>
    </div>
  </div>
  <div class="kc-repo__footer">Updated {{.UpdatedAgo}}</div>
</a>
{{end}}{{end}}`

const projectGridTemplate = `{{define "project-grid"}}{{range .}}
<a class="kc-card kc-fade{{if .Hidden}} kc-card--hidden{{end}}" href="{{.Href}}" data-category="{{.Category}}">
  <div class="kc-card__icon" aria-hidden="true"></div>
  <h3 class="kc-card__title">{{.Name}}</h3>
  <p class="kc-card__desc">{{.Description}}</p>
  <div class="kc-card__tags">{{range .Tags}}<span class="kc-card__tag" style="border-color:{{.Color}};color:{{.Color}}">{{.Name}}</span>{{end}}</div>
  <div class="kc-card__cta">View Details</div>
</a>
{{end}}{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body data-base-path="{{.BasePath}}">
<nav class="kc-nav">
  <button class="kc-nav__hamburger" aria-label="Menu"><span></span></button>
  <div class="kc-nav__links">{{range .Nav}}
    <a class="kc-nav__link{{if .Active}} active{{end}}" href="{{.Href}}">{{.Label}}</a>{{end}}
  </div>
</nav>
<main>
{{- if .Filters}}
<div class="kc-filters">{{range .Filters}}
  <button class="kc-filter{{if .Active}} active{{end}}" data-category="{{.Category}}">{{.Category}}</button>{{end}}
</div>
{{- end}}
{{- range .Sections}}
<section id="{{.ID}}" class="kc-section">{{.HTML}}</section>
{{- end}}
</main>
</body>
</html>
{{end}}`

var templates = template.Must(template.New("render").Parse(
	profileStatsTemplate + repoGridTemplate + projectGridTemplate + pageTemplate,
))

// PageTemplate returns the templates set, the whole page is named "page"
func PageTemplate() *template.Template {
	return templates
}
