package routes

import (
	"net/http"

	"github.com/freightlens/resolver/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness and registry size.
func HealthHandler(c echo.Context) error {
	ac := c.(*middleware.AppContext)
	reg := ac.App.Registry.Load()

	cached := 0
	if ac.App.Cache != nil {
		cached = ac.App.Cache.Len()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":          "ok",
		"entities":        reg.Len(),
		"name_changes":    len(reg.NameChanges()),
		"embedding_cache": cached,
	})
}
