// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler      *handler.AddressHandler
	ProfileHandler      *handler.ProfileHandler
	CatalogHandler      *handler.CatalogHandler
	SettingsHandler     *handler.SettingsHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler      *handler.AddressHandler
	profileHandler      *handler.ProfileHandler
	catalogHandler      *handler.CatalogHandler
	settingsHandler     *handler.SettingsHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:      params.AddressHandler,
		profileHandler:      params.ProfileHandler,
		catalogHandler:      params.CatalogHandler,
		settingsHandler:     params.SettingsHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User account and profile routes
	userGroup := e.Group("/users/:userId")
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PATCH("/profile", r.profileHandler.UpdateProfile)

		// Address book; at most one default address per user
		userGroup.POST("/addresses", r.addressHandler.CreateAddress)
		userGroup.GET("/addresses", r.addressHandler.ListAddresses)
		userGroup.GET("/addresses/:addressId", r.addressHandler.GetAddress)
		userGroup.PATCH("/addresses/:addressId", r.addressHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:addressId", r.addressHandler.DeleteAddress)
	}
	e.DELETE("/users/:userId", r.profileHandler.DeleteAccount)

	// Catalog browsing routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:productId", r.catalogHandler.GetProduct)
		catalogGroup.GET("/designs", r.catalogHandler.ListDesigns)
		catalogGroup.GET("/designs/:designId", r.catalogHandler.GetDesign)
	}

	// Shop settings routes, one JSON document per scope
	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/:scope", r.settingsHandler.GetSettings)
		settingsGroup.PUT("/:scope", r.settingsHandler.UpdateSettings)
	}

	// Transactional email routes
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("/email", r.notificationHandler.SendEmail)
		notificationGroup.GET("/email", r.notificationHandler.ListEmailLog)
	}
}
