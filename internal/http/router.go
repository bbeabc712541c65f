package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/emmaderbe/SocialApp/internal/handler"
)

// NewRouter builds the echo server with the feed API mounted under /api.
func NewRouter(feedHandler *handler.FeedHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	feedHandler.RegisterRoutes(api)

	return e
}
