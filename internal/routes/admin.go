package routes

import (
	"github.com/samsaracrafts/storefront/internal/middleware"
	"github.com/samsaracrafts/storefront/internal/router"
)

// RegisterAdminRoutes registers the admin panel. Everything except the login
// page sits behind the shared-secret session check.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	// Login is the only unauthenticated admin route.
	r.Get("/admin/login", deps.AuthHandler.ShowLogin)
	r.Post("/admin/login", deps.AuthHandler.Login)

	protected := r.Group(middleware.RequireAdmin(deps.AdminSecret))

	protected.Post("/admin/logout", deps.AuthHandler.Logout)
	protected.Get("/admin", deps.DashboardHandler.ServeHTTP)

	// Products
	protected.Get("/admin/products", deps.ProductHandler.List)
	protected.Get("/admin/products/new", deps.ProductHandler.New)
	protected.Post("/admin/products", deps.ProductHandler.Create)
	protected.Get("/admin/products/{id}/edit", deps.ProductHandler.Edit)
	protected.Post("/admin/products/{id}", deps.ProductHandler.Update)
	protected.Post("/admin/products/{id}/delete", deps.ProductHandler.Delete)

	// Remedies
	protected.Get("/admin/remedies", deps.RemedyHandler.List)
	protected.Get("/admin/remedies/new", deps.RemedyHandler.New)
	protected.Post("/admin/remedies", deps.RemedyHandler.Create)
	protected.Get("/admin/remedies/{id}/edit", deps.RemedyHandler.Edit)
	protected.Post("/admin/remedies/{id}", deps.RemedyHandler.Update)
	protected.Post("/admin/remedies/{id}/delete", deps.RemedyHandler.Delete)

	// Subscribers and newsletter
	protected.Get("/admin/subscribers", deps.SubscriberHandler.List)
	protected.Get("/admin/newsletter", deps.SubscriberHandler.ShowBroadcast)
	protected.Post("/admin/newsletter", deps.SubscriberHandler.Broadcast)
}
