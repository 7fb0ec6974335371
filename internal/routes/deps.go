package routes

import (
	"net/http"

	"github.com/samsaracrafts/storefront/internal/handler/admin"
	"github.com/samsaracrafts/storefront/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for customer-facing routes.
type StorefrontDeps struct {
	// Home
	HomeHandler http.Handler

	// Product browsing (catalog, search, categories, detail)
	ProductHandler *storefront.ProductHandler

	// Remedies
	RemedyHandler *storefront.RemedyHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout (WhatsApp handoff)
	CheckoutHandler *storefront.CheckoutHandler

	// Newsletter signup
	NewsletterHandler *storefront.NewsletterHandler
}

// AdminDeps contains dependencies for admin routes.
type AdminDeps struct {
	// AdminSecret gates everything under /admin except the login page.
	AdminSecret string

	// Auth
	AuthHandler *admin.AuthHandler

	// Dashboard
	DashboardHandler http.Handler

	// Products
	ProductHandler *admin.ProductHandler

	// Remedies
	RemedyHandler *admin.RemedyHandler

	// Subscribers and newsletter broadcasts
	SubscriberHandler *admin.SubscriberHandler
}
