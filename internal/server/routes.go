package server

import (
	"github.com/freightlens/resolver/internal/server/routes"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the API surface.
func RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", routes.HealthHandler)
	api.GET("/entities", routes.EntitiesHandler)
	api.POST("/resolve", routes.ResolveHandler)
	api.POST("/registry/reload", routes.ReloadHandler)
}
