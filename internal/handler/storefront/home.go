package storefront

import (
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// HomeHandler renders the landing page with the newest products and remedies.
type HomeHandler struct {
	products domain.ProductService
	remedies domain.RemedyService
	renderer *handler.Renderer
	logger   *slog.Logger
}

// NewHomeHandler creates a new home page handler.
func NewHomeHandler(products domain.ProductService, remedies domain.RemedyService, renderer *handler.Renderer, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		products: products,
		remedies: remedies,
		renderer: renderer,
		logger:   logger,
	}
}

// featuredCount limits how many items the landing page shows per shelf.
const featuredCount = 8

// ServeHTTP handles GET /
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.logger.Error("home: failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}

	remedies, err := h.remedies.ListRemedies(ctx)
	if err != nil {
		h.logger.Error("home: failed to list remedies", "error", err)
		http.Error(w, "Failed to load remedies", http.StatusInternalServerError)
		return
	}
	if len(remedies) > featuredCount {
		remedies = remedies[:featuredCount]
	}

	data := BaseTemplateData(r)
	data["Products"] = products
	data["Remedies"] = remedies

	h.renderer.RenderHTTP(w, "storefront/home", data)
}
