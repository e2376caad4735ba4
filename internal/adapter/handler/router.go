package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicedesk/transcription-review/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	reviewHandler *Review
	pagesHandler  *Pages
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, reviewHandler *Review, pagesHandler *Pages) *Router {
	return &Router{
		cfg:           cfg,
		reviewHandler: reviewHandler,
		pagesHandler:  pagesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// HTML pages
	e.GET("/", rt.pagesHandler.Landing)
	e.GET("/dashboard", rt.pagesHandler.Dashboard)

	// JSON API
	api := e.Group("/api")
	api.POST("/update-transcription-status", rt.reviewHandler.UpdateStatus)
	api.POST("/resolve-transcription", rt.reviewHandler.Resolve)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
