package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kinetic-cards/portfolio/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "github.html")

	err := writePage(path, render.PageData{
		Title:    "Open Source",
		Sections: []render.Section{{ID: "repo-grid", HTML: "<p>grid</p>"}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<title>Open Source</title>")
	assert.Contains(t, string(content), `<section id="repo-grid" class="kc-section"><p>grid</p></section>`)
}

func TestCommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "render")

	out, err := renderCmd.Flags().GetString("out")
	require.NoError(t, err)
	assert.Equal(t, "public", out)
}
