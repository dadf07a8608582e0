package routes

import (
	"net/http"

	"github.com/freightlens/resolver/internal/server/middleware"
	"github.com/freightlens/resolver/pkg/logger"
	"github.com/freightlens/resolver/pkg/registry"

	"github.com/labstack/echo/v4"
)

type reloadBody struct {
	Path string `json:"path" validate:"required"`
}

// ReloadHandler replaces the registry with the snapshot at the given path.
// In-flight resolutions finish against the registry they started with.
func ReloadHandler(c echo.Context) error {
	ac := c.(*middleware.AppContext)

	body := new(reloadBody)
	if err := c.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(body); err != nil {
		return err
	}

	reg := registry.LoadSnapshot(body.Path)
	ac.App.Registry.Swap(reg)
	logger.Info("Registry reloaded", "path", body.Path, "entities", reg.Len())

	return c.JSON(http.StatusOK, map[string]any{
		"status":   "reloaded",
		"entities": reg.Len(),
	})
}
