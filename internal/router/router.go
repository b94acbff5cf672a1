package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskdeck/internal/auth"
	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/handler"
	"taskdeck/internal/middleware"
	"taskdeck/internal/validation"
)

// Register wires routes, middleware, the request validator and the terminal
// error handler.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.ContentType())
	e.Use(middleware.Accept())

	e.Binder = new(binder)
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	requireAuth := middleware.RequireAuth(tokens)

	ag := api.Group("/auth")
	ag.POST("/register", authHandler.Register)
	ag.POST("/login", authHandler.Login)
	ag.POST("/reissue-token", authHandler.Reissue)
	ag.POST("/status", authHandler.Status, requireAuth)

	tg := api.Group("/tasks")
	tg.GET("", taskHandler.List, requireAuth)
	tg.POST("", taskHandler.Create, requireAuth)
	tg.PUT("", taskHandler.CollectionNotAllowed)
	tg.PATCH("", taskHandler.CollectionNotAllowed)
	tg.DELETE("", taskHandler.CollectionNotAllowed)

	tg.GET("/:id", taskHandler.Get, requireAuth)
	tg.POST("/:id", taskHandler.ItemNotAllowed)
	tg.PUT("/:id", taskHandler.Replace, requireAuth)
	tg.PATCH("/:id", taskHandler.Update, requireAuth)
	tg.DELETE("/:id", taskHandler.Delete, requireAuth)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return apperrors.NotFound("Route not found")
	})
}
