package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/category"
	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// ProductHandler serves product browsing: the full catalog, text search,
// category pages, and the product detail page.
type ProductHandler struct {
	products domain.ProductService
	resolver *category.Resolver
	renderer *handler.Renderer
	logger   *slog.Logger
}

// NewProductHandler creates a new product browsing handler.
func NewProductHandler(products domain.ProductService, resolver *category.Resolver, renderer *handler.Renderer, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// List handles GET /products with an optional ?q= search query.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	var (
		products []domain.Product
		err      error
	)
	if query != "" {
		products, err = h.products.SearchProducts(ctx, query)
	} else {
		products, err = h.products.ListProducts(ctx)
	}
	if err != nil {
		h.logger.Error("products: failed to list", "query", query, "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Products"] = products
	data["Query"] = query
	data["Title"] = "All Products"

	h.renderer.RenderHTTP(w, "storefront/products", data)
}

// Category handles GET /category/{section}/{slug}. The slug resolves to path
// prefixes through the section's table; an unknown slug renders an empty
// category page, never the whole catalog.
func (h *ProductHandler) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section := r.PathValue("section")
	slug := r.PathValue("slug")

	prefixes := h.resolver.ResolveSlug(section, slug)

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.logger.Error("products: failed to list for category",
			"section", section, "slug", slug, "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	matched := category.Filter(products, func(p domain.Product) string {
		return p.Category
	}, prefixes, slug)

	data := BaseTemplateData(r)
	data["Products"] = matched
	data["Section"] = section
	data["Slug"] = slug
	data["Title"] = category.Title(slug)

	h.renderer.RenderHTTP(w, "storefront/products", data)
}

// Detail handles GET /products/{id}
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	product, err := h.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) || domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("products: failed to load detail", "id", id, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Product"] = product

	h.renderer.RenderHTTP(w, "storefront/product_detail", data)
}
