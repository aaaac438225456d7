package middleware // contains reusable HTTP middleware for the admin panel

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/utils"
)

// SignInPath is the admin sign-in page.  It is the only admin-prefixed
// path reachable without a session; everything else under /admin
// requires a valid, unexpired session cookie.
const SignInPath = "/admin"

// PrincipalKey is the echo context key under which the guard stores the
// authenticated principal for downstream handlers.
const PrincipalKey = "principal"

// Principal returns the authenticated principal the guard stored for
// this request, or the empty string outside a guarded route.  Admin
// handlers use it as the audit actor.
func Principal(c echo.Context) string {
	p, _ := c.Get(PrincipalKey).(string)
	return p
}

// Session returns the route guard for admin-prefixed paths.  It reads
// the session cookie, verifies the JWT inside it and injects the
// principal into the request context.  Requests without a valid session
// are redirected to the sign-in page carrying the originally requested
// path in the "from" query parameter, so the admin lands back where
// they were headed after signing in.  API paths get a 401 JSON body
// instead of a redirect, since their caller is script, not a browser.
func Session(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == SignInPath || path == SignInPath+"/login" {
				return next(c)
			}

			if cookie, err := c.Cookie(cfg.SessionCookieName()); err == nil && cfg.AuthSecret != "" {
				if principal, perr := utils.ParseSessionToken(cfg.AuthSecret, cookie.Value); perr == nil {
					c.Set(PrincipalKey, principal)
					return next(c)
				}
			}

			if strings.HasPrefix(path, SignInPath+"/api/") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			return c.Redirect(http.StatusSeeOther, SignInPath+"?from="+url.QueryEscape(path))
		}
	}
}
