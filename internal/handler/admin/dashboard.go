package admin

import (
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// DashboardHandler renders the admin landing page with catalog counts.
type DashboardHandler struct {
	products    domain.ProductService
	remedies    domain.RemedyService
	subscribers domain.SubscriberService
	renderer    *handler.Renderer
	logger      *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(products domain.ProductService, remedies domain.RemedyService, subscribers domain.SubscriberService, renderer *handler.Renderer, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		products:    products,
		remedies:    remedies,
		subscribers: subscribers,
		renderer:    renderer,
		logger:      logger,
	}
}

// ServeHTTP handles GET /admin
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.logger.Error("admin: dashboard product count failed", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	remedies, err := h.remedies.ListRemedies(ctx)
	if err != nil {
		h.logger.Error("admin: dashboard remedy count failed", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	subscribers, err := h.subscribers.ListSubscribers(ctx)
	if err != nil {
		h.logger.Error("admin: dashboard subscriber count failed", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["ProductCount"] = len(products)
	data["RemedyCount"] = len(remedies)
	data["SubscriberCount"] = len(subscribers)
	data["RecentProducts"] = firstN(products, 5)

	h.renderer.RenderHTTP(w, "admin/dashboard", data)
}

func firstN(products []domain.Product, n int) []domain.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}
