// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ShopHandler         *handler.ShopHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	OwnerHandler        *handler.OwnerHandler
	NotificationHandler *handler.NotificationHandler
	EventHandler        *handler.EventHandler
	SessionMiddleware   *middleware.SessionMiddleware
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api", p.SessionMiddleware.Identify)

	// Shared catalog reads do not need the session page
	api.GET("/shops", p.ShopHandler.ListShops)
	api.GET("/shops/:id/menu", p.ShopHandler.ListMenuItems)
	api.GET("/shops/:id/payment-qr", p.ShopHandler.PaymentQR)

	// The stream outlives any single request so it must not hold the session page
	api.GET("/events", p.EventHandler.Stream)

	session := api.Group("", p.SessionMiddleware.OpenPage)
	{
		session.GET("/session", p.SessionHandler.GetSession)
		session.POST("/session", p.SessionHandler.Login)
		session.DELETE("/session", p.SessionHandler.Logout)
		session.GET("/session/gate", p.SessionHandler.Gate)

		session.GET("/shop/selected", p.ShopHandler.GetSelectedShop)
		session.PUT("/shop/selected", p.ShopHandler.SelectShop)

		session.GET("/cart", p.CartHandler.GetCart)
		session.POST("/cart/items", p.CartHandler.AddItem)
		session.DELETE("/cart/items/:itemId", p.CartHandler.RemoveItem)
		session.DELETE("/cart", p.CartHandler.Clear)
		session.POST("/cart/sidebar/toggle", p.CartHandler.ToggleSidebar)

		session.GET("/notifications", p.NotificationHandler.ListNotifications)
	}

	authed := session.Group("", p.AuthMiddleware.Authenticate)
	{
		authed.GET("/profile", p.SessionHandler.GetProfile)
		authed.POST("/checkout", p.CheckoutHandler.Checkout)
		authed.GET("/orders", p.OrderHandler.ListUserOrders)
		authed.GET("/orders/:id", p.OrderHandler.OrderDetails)
	}

	owner := session.Group("/owner", p.AuthMiddleware.RequireRole(entity.RoleShopOwner))
	{
		owner.GET("/shops", p.OwnerHandler.ListShops)
		owner.GET("/orders", p.OrderHandler.ListShopOrders)
		owner.PUT("/orders/:id/status", p.OrderHandler.UpdateOrderStatus)
		owner.PUT("/orders/:id/payment-status", p.OrderHandler.UpdatePaymentStatus)
		owner.POST("/shops/:id/menu", p.OwnerHandler.AddMenuItem)
		owner.PUT("/shops/:id/menu/:itemId", p.OwnerHandler.UpdateMenuItem)
	}
}
