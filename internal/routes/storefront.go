package routes

import (
	"github.com/samsaracrafts/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Home page
	r.Get("/", deps.HomeHandler.ServeHTTP)

	// Product browsing
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Detail)
	r.Get("/category/{section}/{slug}", deps.ProductHandler.Category)

	// Remedies
	r.Get("/remedies", deps.RemedyHandler.List)
	r.Get("/remedies/{id}", deps.RemedyHandler.Detail)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/items", deps.CartHandler.Add)
	r.Post("/cart/items/{id}/increase", deps.CartHandler.Increase)
	r.Post("/cart/items/{id}/decrease", deps.CartHandler.Decrease)
	r.Post("/cart/items/{id}/remove", deps.CartHandler.Remove)

	// Checkout hands off to WhatsApp
	r.Post("/checkout/whatsapp", deps.CheckoutHandler.WhatsApp)

	// Newsletter
	r.Post("/newsletter/subscribe", deps.NewsletterHandler.Subscribe)
	r.Get("/newsletter/unsubscribe", deps.NewsletterHandler.Unsubscribe)
}
