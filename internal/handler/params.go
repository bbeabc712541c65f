package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emmaderbe/SocialApp/internal/service"
)

// parsePostID reads the :id path parameter. Server ids start at 1.
func parsePostID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: post id %q", service.ErrInvalid, raw)
	}
	return id, nil
}
