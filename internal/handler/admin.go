package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandland/bandland/internal/metrics"
	"github.com/bandland/bandland/internal/middleware"
	"github.com/bandland/bandland/internal/model"
	"github.com/bandland/bandland/internal/service"
	"github.com/bandland/bandland/internal/store"
)

// AdminHandler exposes the admin panel's JSON API: CRUD over shows and
// merch plus the audit log view.  Every route it serves sits behind the
// session guard, so by the time a request lands here it carries the
// admin principal, which mutations record as the audit actor.
type AdminHandler struct {
	Svc     *service.Admin
	Store   *store.Store
	Metrics *metrics.Metrics
}

func NewAdminHandler(svc *service.Admin, st *store.Store, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{Svc: svc, Store: st, Metrics: m}
}

// ----- shows -----

// ListShows handles GET /admin/api/shows.
func (h *AdminHandler) ListShows(c echo.Context) error {
	shows, err := h.Store.Shows.Read()
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, shows)
}

// CreateShow handles POST /admin/api/shows.
func (h *AdminHandler) CreateShow(c echo.Context) error {
	var in model.ShowInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	show, err := h.Svc.CreateShow(middleware.Principal(c), in)
	if err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityShows, model.ActionCreate).Inc()
	return c.JSON(http.StatusCreated, show)
}

// UpdateShow handles PUT /admin/api/shows/:id.
func (h *AdminHandler) UpdateShow(c echo.Context) error {
	var in model.ShowInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	show, err := h.Svc.UpdateShow(middleware.Principal(c), c.Param("id"), in)
	if err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityShows, model.ActionUpdate).Inc()
	return c.JSON(http.StatusOK, show)
}

// DeleteShow handles DELETE /admin/api/shows/:id.
func (h *AdminHandler) DeleteShow(c echo.Context) error {
	if err := h.Svc.DeleteShow(middleware.Principal(c), c.Param("id")); err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityShows, model.ActionDelete).Inc()
	return c.NoContent(http.StatusNoContent)
}

// ----- merch -----

// ListMerch handles GET /admin/api/merch.
func (h *AdminHandler) ListMerch(c echo.Context) error {
	items, err := h.Store.Merch.Read()
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateMerch handles POST /admin/api/merch.
func (h *AdminHandler) CreateMerch(c echo.Context) error {
	var in model.MerchInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Svc.CreateMerch(middleware.Principal(c), in)
	if err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityMerch, model.ActionCreate).Inc()
	return c.JSON(http.StatusCreated, item)
}

// UpdateMerch handles PUT /admin/api/merch/:id.
func (h *AdminHandler) UpdateMerch(c echo.Context) error {
	var in model.MerchInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Svc.UpdateMerch(middleware.Principal(c), c.Param("id"), in)
	if err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityMerch, model.ActionUpdate).Inc()
	return c.JSON(http.StatusOK, item)
}

// DeleteMerch handles DELETE /admin/api/merch/:id.
func (h *AdminHandler) DeleteMerch(c echo.Context) error {
	if err := h.Svc.DeleteMerch(middleware.Principal(c), c.Param("id")); err != nil {
		return mutationError(c, err)
	}
	h.Metrics.Mutations.WithLabelValues(model.EntityMerch, model.ActionDelete).Inc()
	return c.NoContent(http.StatusNoContent)
}

// ----- audit -----

// ListAudit handles GET /admin/api/audit.  The store keeps the file
// newest first, so the dashboard shows it as-is.
func (h *AdminHandler) ListAudit(c echo.Context) error {
	entries, err := h.Store.Audit.Read()
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// mutationError maps service failures to HTTP responses.  Validation
// failures carry per-field messages so the editing form can highlight
// the inputs; everything else is opaque to the client.
func mutationError(c echo.Context, err error) error {
	var fe model.FieldErrors
	switch {
	case errors.As(err, &fe):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":       "Please correct the highlighted fields.",
			"fieldErrors": fe,
		})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, store.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "write failed"})
	}
}

// readError maps store read failures.  A missing file never lands here;
// the store already turns that into an empty collection.
func readError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrValidation) {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "content file is corrupt"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read failed"})
}
