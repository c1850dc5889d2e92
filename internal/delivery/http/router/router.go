// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"grove/internal/delivery/http/middleware"
	"grove/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	ProfileHandler   *handler.ProfileHandler
	DirectoryHandler *handler.DirectoryHandler
	ContentHandler   *handler.ContentHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	profileHandler   *handler.ProfileHandler
	directoryHandler *handler.DirectoryHandler
	contentHandler   *handler.ContentHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		profileHandler:   params.ProfileHandler,
		directoryHandler: params.DirectoryHandler,
		contentHandler:   params.ContentHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Public member directory
	groveGroup := e.Group("/grove")
	{
		groveGroup.GET("", r.directoryHandler.ListProfiles)
		groveGroup.GET("/:id", r.directoryHandler.GetProfile)
	}

	// The logged-in member's own profile
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetMe)
		meGroup.PUT("", r.profileHandler.UpdateMe)
	}

	// Static site content
	contentGroup := e.Group("/content")
	{
		contentGroup.GET("/notices", r.contentHandler.Notices)
		contentGroup.GET("/memories", r.contentHandler.Memories)
		contentGroup.GET("/sharings", r.contentHandler.Sharings)
	}
}
