package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Cart       *CartHandler
	Checkout   *CheckoutHandler
	Navigation *NavigationHandler
	Profile    *ProfileHandler
	Assistant  *AssistantHandler
}

func NewRouter(h Handlers, authz *middleware.Authz, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.MetricsMiddleware(), middleware.Logging(log))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/guest", h.Auth.Guest)
		auth.POST("/logout", authz.Require(), h.Auth.Logout)
	}

	catalog := r.Group("/v1/catalog")
	{
		catalog.GET("/products", h.Catalog.ListProducts)
		catalog.GET("/products/:id", h.Catalog.GetProduct)
		catalog.GET("/vendors/:id", h.Catalog.GetVendor)
		catalog.GET("/creators", h.Catalog.ListCreators)
		catalog.GET("/feed", h.Catalog.Feed)
		catalog.GET("/leaderboard", h.Catalog.Leaderboard)
		catalog.GET("/categories", h.Catalog.Categories)
	}

	app := r.Group("/v1/app", authz.Require())
	{
		app.GET("/cart", h.Cart.Get)
		app.POST("/cart/items", h.Cart.AddItem)
		app.PATCH("/cart/items/:productId", h.Cart.UpdateItem)
		app.DELETE("/cart/items/:productId", h.Cart.RemoveItem)

		app.GET("/checkout", h.Checkout.Get)
		app.POST("/checkout", h.Checkout.Begin)
		app.POST("/checkout/next", h.Checkout.Next)
		app.POST("/checkout/back", h.Checkout.Back)
		app.POST("/checkout/cancel", h.Checkout.Cancel)
		app.POST("/checkout/place-order", h.Checkout.PlaceOrder)

		app.GET("/navigation", h.Navigation.State)
		app.POST("/navigation/goto", h.Navigation.Goto)
		app.POST("/navigation/product/:id", h.Navigation.OpenProduct)
		app.POST("/navigation/vendor/:id", h.Navigation.OpenVendor)
		app.POST("/navigation/chat/:productId", h.Navigation.StartChat)
		app.POST("/navigation/creator/:id", h.Navigation.OpenCreator)
		app.DELETE("/navigation/creator", h.Navigation.CloseCreator)
		app.POST("/navigation/storefront", h.Navigation.ViewStorefront)
		app.POST("/navigation/back", h.Navigation.Back)

		app.GET("/profile", h.Profile.Get)
		app.PATCH("/profile", h.Profile.Update)
		app.POST("/profile/preferences/:key/toggle", h.Profile.TogglePreference)
		app.GET("/wallet", h.Profile.Wallet)
		app.POST("/wallet/withdraw", h.Profile.Withdraw)
		app.POST("/referral/copy", h.Profile.CopyReferral)

		app.GET("/orders", h.Profile.Orders)
		app.GET("/notifications", h.Profile.Notifications)
		app.POST("/notifications/:id/read", h.Profile.MarkNotificationRead)
		app.GET("/notices", h.Profile.Notices)

		app.GET("/contacts", h.Assistant.Contacts)
		app.GET("/chat/:contactId", h.Assistant.History)
		app.POST("/chat/:contactId", h.Assistant.Chat)
	}

	r.POST("/v1/assistant/search", authz.Require(), h.Assistant.Search)

	return r
}
