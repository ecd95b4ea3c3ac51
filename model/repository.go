package model

import "time"

type GithubProfile struct {
	PublicRepos int `json:"publicRepos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`
}

type GithubRepository struct {
	Name        string            `json:"name"`
	Owner       string            `json:"owner"`
	Description *string           `json:"description,omitempty"` // nil when the repository has no description
	Language    *string           `json:"language,omitempty"`    // primary language reported by github, can be nil
	Stars       int               `json:"stars"`
	Forks       int               `json:"forks"`
	SizeKB      int               `json:"sizeKB"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Fork        bool              `json:"fork"`
	URL         string            `json:"url"`
	Languages   LanguageBreakdown `json:"languages,omitempty"`
}

type GithubRepositoryLanguages struct {
	RepositoryName string
	Languages      LanguageBreakdown
	Err            error
}

// GithubData is the merged result of a full load: profile, repositories and their languages
type GithubData struct {
	Profile      GithubProfile      `json:"profile"`
	Repositories []GithubRepository `json:"repositories"`
}

// WithoutForks returns the repositories that are not forks, keeping their order
func WithoutForks(repos []GithubRepository) []GithubRepository {
	filtered := make([]GithubRepository, 0, len(repos))

	for _, r := range repos {
		if !r.Fork {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
