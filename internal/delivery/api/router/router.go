// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/api/middleware"
	"pulse/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BroadcastHandler *handler.BroadcastHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	broadcastHandler *handler.BroadcastHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		broadcastHandler: params.BroadcastHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.POST("/broadcast-requests", r.broadcastHandler.CreateBroadcastRequest)
	apiV1.POST("/conversations/:id/messages", r.broadcastHandler.SendChatMessage)
}
