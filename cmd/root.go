package cmd

import (
	"context"

	"github.com/google/go-github/v66/github"
	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/logger"
	"github.com/kinetic-cards/portfolio/render"
	"github.com/kinetic-cards/portfolio/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Render the dynamic panels of the portfolio site",
	Long: `Portfolio renders the GitHub profile stats, the repositories grid with language bars
and the local projects grid of every configured page variant. Pages can be served
over HTTP or written as static html files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (defaults to config/config.toml)")
}

// app holds everything the commands need once configuration is loaded
type app struct {
	config           *config.Config
	portfolioService service.PortfolioService
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}

	return config.Load()
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Error("unable to load configuration")
		return nil, err
	}

	// configure logger
	logger.Setup(*cfg)

	// the client is created here and given to the service to easily use a mocked client in tests
	githubClient := github.NewClient(nil)

	if cfg.Github.Token != "" {
		log.Debug("will setup github client with authorization token")
		githubClient = githubClient.WithAuthToken(cfg.Github.Token)
	}

	rateLimiter := service.NewGithubRateLimiter(ctx, githubClient, cfg.Github.RateLimitPerHour)
	githubService := service.NewGithubService(*cfg, githubClient, rateLimiter)
	renderer := render.NewRenderer(render.DefaultPalette())

	return &app{
		config:           cfg,
		portfolioService: service.NewPortfolioService(*cfg, githubService, renderer),
	}, nil
}
