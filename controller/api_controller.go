package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinetic-cards/portfolio/config"
	"github.com/kinetic-cards/portfolio/model"
	"github.com/kinetic-cards/portfolio/service"
)

type APIController interface {
	GetGithubData(ctx *gin.Context)
	GetProjects(ctx *gin.Context)
}

type apiController struct {
	portfolioService service.PortfolioService
	config           config.Config
}

func NewAPIController(config config.Config, service service.PortfolioService) APIController {
	return apiController{
		portfolioService: service,
		config:           config,
	}
}

// GetGithubData returns the profile and the non fork repositories with their languages
func (s apiController) GetGithubData(c *gin.Context) {
	var query model.PanelQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(err))
		return
	}

	data, err := s.portfolioService.GetGithubData(c.Request.Context(), query.ResolveUsername(s.config.Github.Username))
	if err != nil {
		c.JSON(statusForError(err), model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetProjects returns the local projects, filtered by category
func (s apiController) GetProjects(c *gin.Context) {
	var query model.PanelQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, s.portfolioService.Projects(query.ResolveCategory()))
}
