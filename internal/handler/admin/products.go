package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
	"github.com/samsaracrafts/storefront/internal/storage"
)

// ProductHandler handles the admin product CRUD surface.
type ProductHandler struct {
	products domain.ProductService
	store    storage.Storage
	renderer *handler.Renderer
	logger   *slog.Logger
}

// NewProductHandler creates a new admin product handler.
func NewProductHandler(products domain.ProductService, store storage.Storage, renderer *handler.Renderer, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// List handles GET /admin/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("admin: failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Products"] = products

	h.renderer.RenderHTTP(w, "admin/products", data)
}

// New handles GET /admin/products/new
func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	data := BaseTemplateData(r)
	data["Action"] = "/admin/products"

	h.renderer.RenderHTTP(w, "admin/product_form", data)
}

// Create handles POST /admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseForm(w, r, "")
	if !ok {
		return
	}

	if _, err := h.products.CreateProduct(r.Context(), input); err != nil {
		h.formError(w, r, "/admin/products", input, err)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Edit handles GET /admin/products/{id}/edit
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("admin: failed to load product", "id", id, "error", err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Product"] = product
	data["Action"] = "/admin/products/" + id

	h.renderer.RenderHTTP(w, "admin/product_form", data)
}

// Update handles POST /admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	input, ok := h.parseForm(w, r, id)
	if !ok {
		return
	}

	if _, err := h.products.UpdateProduct(r.Context(), id, input); err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.formError(w, r, "/admin/products/"+id, input, err)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// Delete handles POST /admin/products/{id}/delete
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("admin: failed to delete product", "id", id, "error", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// parseForm reads the multipart product form. An uploaded image replaces the
// image_url field; when editing without a new upload, the existing URL is
// carried in a hidden field.
func (h *ProductHandler) parseForm(w http.ResponseWriter, r *http.Request, id string) (domain.ProductInput, bool) {
	var input domain.ProductInput

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return input, false
	}

	priceCents, err := parsePriceCents(r.FormValue("price"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return input, false
	}

	stock, err := parseStock(r.FormValue("stock"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return input, false
	}

	imageURL := r.FormValue("image_url")
	uploaded, err := saveImageUpload(r.Context(), h.store, r, "image", "products")
	if err != nil {
		h.logger.Error("admin: product image upload failed", "id", id, "error", err)
		http.Error(w, "Image upload failed", http.StatusBadRequest)
		return input, false
	}
	if uploaded != "" {
		imageURL = uploaded
	}

	input = domain.ProductInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		PriceCents:  priceCents,
		Category:    r.FormValue("category"),
		ImageURL:    imageURL,
		VideoURL:    r.FormValue("video_url"),
		Stock:       stock,
	}
	return input, true
}

func (h *ProductHandler) formError(w http.ResponseWriter, r *http.Request, action string, input domain.ProductInput, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Code == domain.EINTERNAL {
		h.logger.Error("admin: product save failed", "error", err)
		http.Error(w, "Failed to save product", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Error"] = domain.ErrorMessage(err)
	data["Input"] = input
	data["Action"] = action

	w.WriteHeader(http.StatusBadRequest)
	h.renderer.RenderHTTP(w, "admin/product_form", data)
}
