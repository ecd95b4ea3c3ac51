package controller

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kinetic-cards/portfolio/render"
)

// NewRouter setup the gin engine with every route of the portfolio
func NewRouter(apiController APIController, pageController PageController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(render.PageTemplate())

	router.Use(
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)

	api := router.Group("/api")
	{
		api.GET("/github", apiController.GetGithubData)
		api.GET("/projects", apiController.GetProjects)
	}

	router.GET("/demo/run-tests", pageController.RunTestsDemo)
	router.GET("/", pageController.GetPage)
	router.GET("/:page", pageController.GetPage)

	return router
}
