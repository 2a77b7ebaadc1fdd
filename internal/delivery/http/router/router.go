// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/social", r.authHandler.SocialLogin)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.GetOwnAccount)
		accountGroup.PUT("/me/password", r.accountHandler.ChangePassword)
		accountGroup.GET("/:accountID", r.accountHandler.GetAccount)
	}

	// Admin routes that require authentication and the "admins" access
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAccess("admins"))
	{
		adminGroup.GET("/profile/:adminID", r.adminHandler.GetAdmin)
		adminGroup.POST("/maintenance/unlock-due", r.adminHandler.UnlockDueAccounts)
	}
}
