package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iam-fast/meyers-scraper/internal/menu"
	"github.com/iam-fast/meyers-scraper/internal/middleware"
)

// NewRouter wires the HTTP API routes around a menu handler.
func NewRouter(handler *menu.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/menus", handler.GetAllMenus)
		api.GET("/menus/:date", handler.GetMenuByDate)
		api.POST("/menus/export", handler.ExportMenus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, menu.Envelope{
			Success: false,
			Message: "Endpoint not found",
			Data:    nil,
		})
	})

	return r
}
