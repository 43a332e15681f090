package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "evalreport/backend/docs"
	"evalreport/backend/internal/handler"
)

// NewRouter wires middleware and routes. maxUploadBytes bounds request
// bodies; multipart overhead gets one extra megabyte.
func NewRouter(evaluationHandler *handler.EvaluationHandler, maxUploadBytes int64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: newRequestID}))
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))
	if maxUploadBytes > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", (maxUploadBytes>>20)+1)))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	evaluationHandler.RegisterRoutes(e.Group(""))

	return e
}
