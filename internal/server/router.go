package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/swipegen-backend/internal/handlers"
)

type RouterConfig struct {
	GenerationHandler  *handlers.GenerationHandler
	CatalogHandler     *handlers.CatalogHandler
	HealthcheckHandler *handlers.HealthcheckHandler
	AllowOrigins       []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		}
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)

	api := router.Group("/api")
	{
		api.POST("/generate-lp", cfg.GenerationHandler.CreateJob)
		api.GET("/generation-status", cfg.GenerationHandler.GetStatus)
		api.GET("/get-result", cfg.GenerationHandler.GetResult)
		api.GET("/sites", cfg.CatalogHandler.ListSites)
	}

	return router
}
