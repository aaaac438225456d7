package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint the deployment's uptime checks hit.
// It answers before any content file is read, so it stays green even
// when the content directory is empty or misconfigured.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
