package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/joho/godotenv"
	"github.com/kinetic-cards/portfolio/model"
	log "github.com/sirupsen/logrus"
)

// container ids the renderer knows how to fill
const (
	ContainerGithubStats = "github-stats"
	ContainerRepoGrid    = "repo-grid"
	ContainerProjectGrid = "project-grid"
)

// config structure
type Config struct {
	API    APIConfig    `mapstructure:"API"`
	Tasks  TasksConfig  `mapstructure:"TASKS"`
	Logs   LogsConfig   `mapstructure:"LOGS"`
	Github GithubConfig `mapstructure:"GITHUB"`
	Site   SiteConfig   `mapstructure:"SITE"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

type GithubConfig struct {
	Username string `mapstructure:"Username"`
	Token    string `mapstructure:"Token"` // empty means unauthenticated requests (60 calls per hour)

	// when true, a repository whose languages can't be loaded is rendered without language bar
	// instead of failing the whole repositories panel
	IsolateLanguageFailures bool `mapstructure:"IsolateLanguageFailures"`

	// used when github rate limits can't be loaded at startup
	RateLimitPerHour int `mapstructure:"RateLimitPerHour"`
}

type SiteConfig struct {
	Pages    map[string]PageConfig `mapstructure:"Pages"`
	NavLinks []NavLinkConfig       `mapstructure:"NavLinks"`
	Projects []model.Project       `mapstructure:"Projects"`
}

// PageConfig describes a page variant: where it is served from and which containers it has
type PageConfig struct {
	Title      string   `mapstructure:"Title"`
	File       string   `mapstructure:"File"`
	BasePath   string   `mapstructure:"BasePath"`
	Containers []string `mapstructure:"Containers"`
}

type NavLinkConfig struct {
	Label string `mapstructure:"Label"`
	Href  string `mapstructure:"Href"`
}

// Load will read the config file located in config/config.toml
// either next to the binary or in the working directory
// if no file is found, the default configuration is used
func Load() (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return nil, err
	}

	return LoadFrom(dir + "/config/config.toml")
}

// LoadFrom will load the config file at the given path
// falling back to config/config.toml in the working directory
func LoadFrom(configFilePath string) (*Config, error) {
	// .env is optional, only used to provide GITHUB_TOKEN locally
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warning("unable to load .env file")
	}

	cfg := GetDefault()

	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat("config/config.toml"); errors.Is(err, os.ErrNotExist) {
			log.WithField("path", configFilePath).Warning("no config file found, default configuration will be used")
			cfg.applyEnvironment()
			return cfg, nil
		}

		configFilePath = "config/config.toml"
	}

	// load default and config file content
	if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// applyEnvironment will use environment variables for secrets not set in the config file
func (cfg *Config) applyEnvironment() {
	if cfg.Github.Token == "" {
		cfg.Github.Token = os.Getenv("GITHUB_TOKEN")
	}
}

// Page returns the page variant with the given name
func (cfg Config) Page(name string) (PageConfig, bool) {
	page, found := cfg.Site.Pages[name]
	return page, found
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
		Github: GithubConfig{
			Username:                "YdvVipin",
			IsolateLanguageFailures: false,
			RateLimitPerHour:        60,
		},
		Site: SiteConfig{
			Pages: map[string]PageConfig{
				"index": {
					Title:      "Portfolio",
					File:       "index.html",
					BasePath:   "",
					Containers: []string{ContainerGithubStats, ContainerRepoGrid, ContainerProjectGrid},
				},
				"projects": {
					Title:      "Projects",
					File:       "projects.html",
					BasePath:   "",
					Containers: []string{ContainerProjectGrid},
				},
				"github": {
					Title:      "Open Source",
					File:       "github.html",
					BasePath:   "",
					Containers: []string{ContainerGithubStats, ContainerRepoGrid},
				},
			},
			NavLinks: []NavLinkConfig{
				{Label: "Home", Href: "index.html"},
				{Label: "Projects", Href: "projects.html"},
				{Label: "GitHub", Href: "github.html"},
			},
			Projects: defaultProjects(),
		},
	}
}

func defaultProjects() []model.Project {
	return []model.Project{
		{Name: "QA Automation AI Enabler", Path: "projects/ai-enabled-qa/", Description: "50K+ LOC platform with 72 FastAPI endpoints, 18 AI agents, React dashboard", Tags: []string{"Python", "React", "FastAPI"}, Category: "ai-platforms"},
		{Name: "Playwright BDD Framework", Path: "projects/playwright-bdd-framework/", Description: "TypeScript BDD framework with 3 AI agents and 9-tier intelligent locator system", Tags: []string{"TypeScript", "Playwright"}, Category: "qa-frameworks"},
		{Name: "Multi-Agent Orchestration", Path: "projects/multi-agent-orchestration/", Description: "5 specialized agents with 5 MCP servers using CrewAI and LangChain", Tags: []string{"Python", "CrewAI"}, Category: "ai-platforms"},
		{Name: "QA RAG System", Path: "projects/rag-system/", Description: "25+ data collectors with FAISS vector search for intelligent QA knowledge retrieval", Tags: []string{"Python", "FAISS"}, Category: "ai-ml"},
		{Name: "GenAI QA Automation", Path: "projects/genai-qa-automation/", Description: "Generative AI powered test case generation and execution pipeline", Tags: []string{"Python", "AI/ML"}, Category: "ai-ml"},
		{Name: "AI-Enabled API Automation", Path: "projects/ai-enabled-api-automation/", Description: "BDD framework with AI-driven API testing, Allure reports, and schema validation", Tags: []string{"Python", "BDD"}, Category: "qa-frameworks"},
		{Name: "AI Gig Discovery", Path: "projects/gig-flow/", Description: "AI-powered freelance gig discovery automation using Claude API", Tags: []string{"Python", "Claude API"}, Category: "ai-ml"},
		{Name: "JIRA Data Analysis", Path: "projects/jira-data-analysis/", Description: "Prophet forecasting and NLP analysis on Jira project data", Tags: []string{"Python", "NLP"}, Category: "data-intelligence"},
		{Name: "Jira-TestRail Integration", Path: "projects/JiraTestRailIntegration/", Description: "Jira to TestRail sync with Grok AI achieving 98% accuracy", Tags: []string{"Python", "Grok AI"}, Category: "data-intelligence"},
		{Name: "E-Commerce Testing", Path: "projects/qa-automation-1/", Description: "End-to-end e-commerce test automation suite", Tags: []string{"Selenium", "Java"}, Category: "qa-frameworks"},
		{Name: "API Testing Suite", Path: "projects/qa-automation-2/", Description: "Comprehensive API testing framework with data-driven approach", Tags: []string{"REST", "Python"}, Category: "qa-frameworks"},
	}
}
