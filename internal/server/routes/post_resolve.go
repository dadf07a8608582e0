package routes

import (
	"net/http"

	"github.com/freightlens/resolver/internal/server/middleware"
	"github.com/freightlens/resolver/pkg/common"
	"github.com/freightlens/resolver/pkg/resolve"

	"github.com/labstack/echo/v4"
)

const maxSuggestions = 5

type resolveCandidate struct {
	Name    string   `json:"name" validate:"required"`
	Type    string   `json:"type" validate:"required"`
	Aliases []string `json:"aliases"`
}

type resolveBody struct {
	Entities []resolveCandidate `json:"entities" validate:"required,min=1,dive"`
}

type resolveMatch struct {
	resolve.MappingResult
	Suggestions []string `json:"suggestions,omitempty"`
}

type resolveResponse struct {
	Results []resolveMatch `json:"results"`
}

func candidatesToEntities(candidates []resolveCandidate) []common.Entity {
	entities := make([]common.Entity, len(candidates))
	for i, c := range candidates {
		entities[i] = common.Entity{
			Name:    c.Name,
			Kind:    common.ParseEntityKind(c.Type),
			Aliases: c.Aliases,
		}
	}
	return entities
}

// ResolveHandler resolves a batch of candidate entities against the
// registry. Unmatched company names come back with up to five suggestions.
func ResolveHandler(c echo.Context) error {
	ac := c.(*middleware.AppContext)

	body := new(resolveBody)
	if err := c.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(body); err != nil {
		return err
	}

	entities := candidatesToEntities(body.Entities)
	results := ac.App.Mapper.MapEntities(c.Request().Context(), entities)

	reg := ac.App.Registry.Load()
	out := make([]resolveMatch, len(results))
	for i, res := range results {
		out[i] = resolveMatch{MappingResult: res}
		if !res.Matched() && entities[i].Kind.Mappable() && entities[i].Name != "" {
			out[i].Suggestions = reg.Suggest(entities[i].Name, maxSuggestions)
		}
	}

	return c.JSON(http.StatusOK, resolveResponse{Results: out})
}
