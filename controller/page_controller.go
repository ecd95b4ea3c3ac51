package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/service"
	"github.com/kinetic-cards/portfolio/ui"
	log "github.com/sirupsen/logrus"
)

type PageController interface {
	GetPage(ctx *gin.Context)
	RunTestsDemo(ctx *gin.Context)
}

type pageController struct {
	portfolioService service.PortfolioService
	steps            []ui.Step
}

// NewPageController needs the router html templates to be set with render.PageTemplate
func NewPageController(service service.PortfolioService, steps []ui.Step) PageController {
	return pageController{
		portfolioService: service,
		steps:            steps,
	}
}

// GetPage renders a page variant, /, /index, /index.html and /projects.html are all valid
func (s pageController) GetPage(c *gin.Context) {
	var query model.PanelQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(err))
		return
	}

	pageName := PageName(c.Param("page"))

	data, err := s.portfolioService.RenderPage(c.Request.Context(), pageName, c.Request.URL.Path, query)
	if err != nil {
		c.JSON(statusForError(err), model.NewAPIError(err))
		return
	}

	c.HTML(http.StatusOK, "page", data)
}

// RunTestsDemo streams the scripted test run as server sent events
func (s pageController) RunTestsDemo(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")

	err := ui.Play(c.Request.Context(), s.steps, func(step ui.Step) {
		c.SSEvent("status", step)
		c.Writer.Flush()
	})

	if err != nil {
		log.WithError(err).Debug("run tests demo interrupted by client")
	}
}

// PageName converts a request path segment to a configured page name
func PageName(segment string) string {
	name := strings.TrimSuffix(strings.Trim(segment, "/"), ".html")

	if name == "" {
		return "index"
	}

	return name
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrUnknownPage):
		return http.StatusNotFound
	case errors.Is(err, model.ErrRateLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrFetchError), errors.Is(err, model.ErrInvalidDataFound):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
