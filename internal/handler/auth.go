package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bandland/bandland/internal/auth"
	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/metrics"
	"github.com/bandland/bandland/internal/middleware"
	"github.com/bandland/bandland/internal/ratelimit"
	"github.com/bandland/bandland/internal/utils"
)

// AuthHandler bundles dependencies for the sign-in endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Verifier *auth.Verifier
	Metrics  *metrics.Metrics
}

func NewAuthHandler(cfg config.Config, v *auth.Verifier, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Verifier: v, Metrics: m}
}

type loginReq struct {
	Password string `json:"password" form:"password"`
}

// Login verifies the admin password and, on success, sets the session
// cookie.  Failures come back as coded messages the sign-in page can
// translate; the submitted password and the stored hash never appear in
// a response or a log line.
func (h *AuthHandler) Login(c echo.Context) error {
	clientKey := ratelimit.ClientIP(c.Request().Header)

	var req loginReq
	if err := c.Bind(&req); err != nil {
		return h.loginError(c, clientKey, fmt.Errorf("%w: %v", auth.ErrInvalidInput, err))
	}

	principal, err := h.Verifier.Authorize(req.Password, clientKey)
	if err != nil {
		return h.loginError(c, clientKey, err)
	}

	if h.Cfg.AuthSecret == "" {
		c.Logger().Error("AUTH_SECRET missing from environment")
		return h.fail(c, http.StatusInternalServerError, "missing_secret")
	}
	token, err := utils.NewSessionToken(h.Cfg.AuthSecret, principal, h.Cfg.SessionTTL)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "session_issue_failed")
	}

	c.SetCookie(h.sessionCookie(token.Token, int(h.Cfg.SessionTTL.Seconds())))
	h.Metrics.SignIns.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"redirect": postLoginRedirect(c.QueryParam("from")),
	})
}

// Logout clears the session cookie and sends the browser back to the
// sign-in page.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.Redirect(http.StatusSeeOther, middleware.SignInPath)
}

// loginError translates a sign-in failure into its coded response.
func (h *AuthHandler) loginError(c echo.Context, clientKey string, err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingConfiguration):
		c.Logger().Error("ADMIN_PASSWORD_HASH missing from environment")
		return h.fail(c, http.StatusInternalServerError, "missing_hash")
	case errors.Is(err, auth.ErrRateLimited):
		c.Logger().Warnf("sign-in rate limited: %s", clientKey)
		return h.fail(c, http.StatusTooManyRequests, "rate_limited")
	case errors.Is(err, auth.ErrMissingInput):
		return h.fail(c, http.StatusBadRequest, "missing_password")
	case errors.Is(err, auth.ErrInvalidCredential):
		return h.fail(c, http.StatusUnauthorized, "invalid_password")
	default:
		return h.fail(c, http.StatusBadRequest, "invalid_input")
	}
}

func (h *AuthHandler) fail(c echo.Context, status int, code string) error {
	h.Metrics.SignIns.WithLabelValues(code).Inc()
	return c.JSON(status, echo.Map{"error": code})
}

// sessionCookie builds the admin session cookie: HTTP-only, strict
// same-site, scoped to the whole site, Secure only in production (the
// __Host- cookie name requires it there).
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.Cfg.SessionCookieName(),
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.Cfg.IsProduction(),
	}
}

// postLoginRedirect echoes back the originally requested admin path, if
// any.  Only admin-prefixed paths are honoured so the parameter cannot
// be abused as an open redirect.
func postLoginRedirect(from string) string {
	if strings.HasPrefix(from, middleware.SignInPath+"/") {
		return from
	}
	return middleware.SignInPath + "/dashboard"
}
