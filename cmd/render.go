package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write every configured page variant as a static html file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("out", "public", "output directory")
	renderCmd.Flags().String("username", "", "github account to display (defaults to the config)")
	renderCmd.Flags().String("category", "all", "project category selected in the filter bar")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	username, _ := cmd.Flags().GetString("username")
	category, _ := cmd.Flags().GetString("category")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	// sorted to get the same logs order on every run
	names := make([]string, 0, len(a.config.Site.Pages))
	for name := range a.config.Site.Pages {
		names = append(names, name)
	}
	sort.Strings(names)

	query := model.PanelQuery{Username: username, Category: category}

	for _, name := range names {
		page := a.config.Site.Pages[name]

		file := page.File
		if file == "" {
			file = name + ".html"
		}

		data, err := a.portfolioService.RenderPage(cmd.Context(), name, "/"+file, query)
		if err != nil {
			return fmt.Errorf("rendering page %s: %w", name, err)
		}

		path := filepath.Join(outDir, filepath.FromSlash(file))
		if err := writePage(path, data); err != nil {
			return err
		}

		log.WithFields(log.Fields{"page": name, "path": path}).Info("page written")
	}

	return nil
}

func writePage(path string, data render.PageData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := render.RenderPage(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
