package router // package router defines how HTTP routes are registered for the site

import (
	"github.com/labstack/echo/v4"

	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/handler"
	"github.com/bandland/bandland/internal/metrics"
	"github.com/bandland/bandland/internal/middleware"
)

// RegisterPublic registers the unauthenticated surface: liveness,
// metrics scrape, and the read endpoints the page-rendering layer
// consumes.  None of these touch the session layer.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.GET("/v1/shows", p.GetShows)
	e.GET("/v1/merch", p.GetMerch)
	e.GET("/v1/site", p.GetSite)
	e.GET("/v1/i18n", p.GetI18n)
}

// RegisterAdmin registers everything under /admin behind the session
// guard.  The guard itself exempts the sign-in path, so /admin/login is
// reachable without a cookie; every other admin route redirects (pages)
// or answers 401 (API) when the session is missing or expired.
func RegisterAdmin(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, adm *handler.AdminHandler) {
	g := e.Group("/admin", middleware.Session(cfg))
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	api := g.Group("/api")
	api.GET("/shows", adm.ListShows)
	api.POST("/shows", adm.CreateShow)
	api.PUT("/shows/:id", adm.UpdateShow)
	api.DELETE("/shows/:id", adm.DeleteShow)
	api.GET("/merch", adm.ListMerch)
	api.POST("/merch", adm.CreateMerch)
	api.PUT("/merch/:id", adm.UpdateMerch)
	api.DELETE("/merch/:id", adm.DeleteMerch)
	api.GET("/audit", adm.ListAudit)
}
