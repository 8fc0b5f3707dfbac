package main

import (
	"net/http"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"

	"github.com/labstack/echo/v4"
)

// respondError maps a service error to its status and user-visible message.
// Internal causes are logged, never surfaced.
func respondError(c echo.Context, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(status, echo.Map{"message": apperr.Message(err)})
}
