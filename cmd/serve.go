package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kinetic-cards/portfolio/controller"
	"github.com/kinetic-cards/portfolio/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio pages and API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "override the listen port from the config")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		a.config.API.ListenPort = port
	}

	// setup handlers and routes
	gin.SetMode(gin.ReleaseMode)
	router := controller.NewRouter(
		controller.NewAPIController(*a.config, a.portfolioService),
		controller.NewPageController(a.portfolioService, ui.RunTestsSequence),
	)

	server := &http.Server{
		Addr:              ":" + a.config.API.ListenPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening on port " + a.config.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("error while starting server")
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	// the server has 15 seconds to finish the requests it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Application stopped gracefully !")
	return nil
}
