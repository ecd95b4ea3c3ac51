package model

import "strings"

// PanelQuery holds the query parameters accepted by the portfolio endpoints
type PanelQuery struct {
	Username string `form:"username"`
	Category string `form:"category"`
}

// ResolveUsername returns the requested username or the configured fallback
func (params PanelQuery) ResolveUsername(fallback string) string {
	if username := strings.TrimSpace(params.Username); username != "" {
		return username
	}

	return fallback
}

// ResolveCategory returns the requested project category, "all" when none is given
func (params PanelQuery) ResolveCategory() string {
	if category := strings.TrimSpace(params.Category); category != "" {
		return strings.ToLower(category)
	}

	return "all"
}
