package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/i18n"
	"github.com/bandland/bandland/internal/store"
)

// PublicHandler serves the read-only endpoints the page-rendering layer
// consumes: the content collections, the site descriptor and the UI
// strings for the negotiated locale.
type PublicHandler struct {
	Store *store.Store
	Site  config.Site
}

func NewPublicHandler(st *store.Store, site config.Site) *PublicHandler {
	return &PublicHandler{Store: st, Site: site}
}

// GetShows handles GET /v1/shows.
func (h *PublicHandler) GetShows(c echo.Context) error {
	shows, err := h.Store.Shows.Read()
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, shows)
}

// GetMerch handles GET /v1/merch.
func (h *PublicHandler) GetMerch(c echo.Context) error {
	items, err := h.Store.Merch.Read()
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetSite handles GET /v1/site.
func (h *PublicHandler) GetSite(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Site)
}

// GetI18n handles GET /v1/i18n.  The locale cookie wins over the
// Accept-Language header; the response names the locale it settled on
// so the client can persist it.
func (h *PublicHandler) GetI18n(c echo.Context) error {
	cookieValue := ""
	if cookie, err := c.Cookie(i18n.LocaleCookie); err == nil {
		cookieValue = cookie.Value
	}
	locale := i18n.Negotiate(cookieValue, c.Request().Header.Get("Accept-Language"))
	return c.JSON(http.StatusOK, echo.Map{
		"locale": locale,
		"labels": i18n.Get(locale),
	})
}
