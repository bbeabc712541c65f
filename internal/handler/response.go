package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emmaderbe/SocialApp/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUnknownPost):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrTransport):
		return Error(c, http.StatusBadGateway, "feed fetch failed")
	case errors.Is(err, service.ErrStopped):
		return Error(c, http.StatusServiceUnavailable, "feed engine stopped")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
