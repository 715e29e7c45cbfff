// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"linkup/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReminderHandler *handler.ReminderHandler
	PushHandler     *handler.PushHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	reminderHandler *handler.ReminderHandler
	pushHandler     *handler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reminderHandler: params.ReminderHandler,
		pushHandler:     params.PushHandler,
	}
}

// RegisterRoutes sets up all the trigger routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Registered for every method so that non-POST requests get the JSON 405 body.
	e.Any("/manualPortInReminder", r.reminderHandler.ManualPortInReminder)

	pubsubGroup := e.Group("/pubsub")
	{
		pubsubGroup.POST("/port-in-reminder", r.pushHandler.HandlePush)
	}
}
