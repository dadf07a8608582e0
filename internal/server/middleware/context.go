package middleware

import (
	"github.com/freightlens/resolver/pkg/match"
	"github.com/freightlens/resolver/pkg/registry"
	"github.com/freightlens/resolver/pkg/resolve"

	"github.com/labstack/echo/v4"
)

// App bundles the shared application state handlers need.
type App struct {
	Registry *registry.Holder
	Mapper   *resolve.Mapper
	Cache    *match.EmbeddingCache
}

// AppContext extends echo.Context with the application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware wraps every request context in an AppContext.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{Context: c, App: app})
		}
	}
}
