package routes

import (
	"net/http"
	"strconv"

	"github.com/freightlens/resolver/internal/server/middleware"
	"github.com/freightlens/resolver/pkg/registry"
	"github.com/freightlens/resolver/pkg/resolve"

	"github.com/labstack/echo/v4"
)

type entityListing struct {
	registry.CanonicalEntity
	Metadata *registry.Metadata `json:"metadata,omitempty"`
}

// EntitiesHandler lists the canonical registry. With ?q= it instead runs a
// name search and returns scored results; ?threshold= adjusts the search
// cutoff.
func EntitiesHandler(c echo.Context) error {
	ac := c.(*middleware.AppContext)
	reg := ac.App.Registry.Load()

	if q := c.QueryParam("q"); q != "" {
		threshold := resolve.DefaultThreshold
		if raw := c.QueryParam("threshold"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 || parsed > 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "threshold must be a number between 0 and 1")
			}
			threshold = parsed
		}
		return c.JSON(http.StatusOK, map[string]any{
			"results": reg.SearchByName(q, threshold),
		})
	}

	entities := reg.Entities()
	listings := make([]entityListing, len(entities))
	for i, e := range entities {
		listings[i] = entityListing{CanonicalEntity: e}
		if meta, ok := reg.MetadataFor(e.ID); ok {
			meta := meta
			listings[i].Metadata = &meta
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"entities":     listings,
		"name_changes": reg.NameChanges(),
	})
}
