package ui

import "strings"

const indexPage = "index.html"

// NavLink is a navigation entry ready to be rendered
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// CurrentPage returns the last segment of a request path, index.html for the site root
func CurrentPage(requestPath string) string {
	segments := strings.Split(requestPath, "/")

	if page := segments[len(segments)-1]; page != "" {
		return page
	}

	return indexPage
}

// ActiveLink tells if a nav link points to the page being displayed
func ActiveLink(requestPath, href, basePath string) bool {
	currentPage := CurrentPage(requestPath)

	if href == currentPage {
		return true
	}

	return currentPage == indexPage && href == basePath+indexPage
}

// NavLinks prefixes every href with the base path and flags the active one
func NavLinks(basePath, requestPath string, labels, hrefs []string) []NavLink {
	links := make([]NavLink, 0, len(labels))

	for i, label := range labels {
		if i >= len(hrefs) {
			break
		}

		href := basePath + hrefs[i]
		links = append(links, NavLink{
			Label:  label,
			Href:   href,
			Active: ActiveLink(requestPath, href, basePath),
		})
	}

	return links
}
