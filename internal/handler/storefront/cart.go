package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/cookie"
	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// CartHandler handles all cart-related storefront routes. The cart itself
// lives in memory keyed by a cookie token; products are looked up at
// add-time so the line item snapshots title and price.
type CartHandler struct {
	manager  *cart.Manager
	products domain.ProductService
	remedies domain.RemedyService
	renderer *handler.Renderer
	cookies  *cookie.Config
	logger   *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(manager *cart.Manager, products domain.ProductService, remedies domain.RemedyService, renderer *handler.Renderer, cookies *cookie.Config, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		manager:  manager,
		products: products,
		remedies: remedies,
		renderer: renderer,
		cookies:  cookies,
		logger:   logger,
	}
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	var summary cart.Summary

	if token := GetCartTokenFromCookie(r); token != "" {
		if session := h.manager.Get(token); session != nil {
			summary = session.Summary()
		}
	}

	data := BaseTemplateData(r)
	data["Summary"] = summary

	h.renderer.RenderHTTP(w, "storefront/cart", data)
}

// Add handles POST /cart/items. The form carries the item id and a type of
// "product" (default) or "remedy"; title, price and image are snapshotted
// from the catalog at add time, never taken from the form.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}

	var item cart.LineItem
	switch r.FormValue("type") {
	case "remedy":
		remedy, err := h.remedies.GetRemedy(ctx, id)
		if err != nil {
			h.addLookupError(w, r, err, id)
			return
		}
		item = cart.LineItem{
			ID:             remedy.ID.String(),
			Title:          remedy.Title,
			UnitPriceCents: remedy.PriceCents,
			ImageURL:       remedy.ImageURL,
		}
	default:
		product, err := h.products.GetProduct(ctx, id)
		if err != nil {
			h.addLookupError(w, r, err, id)
			return
		}
		item = cart.LineItem{
			ID:             product.ID.String(),
			Title:          product.Title,
			UnitPriceCents: product.PriceCents,
			ImageURL:       product.ImageURL,
		}
	}

	token := GetCartTokenFromCookie(r)
	session, newToken, err := h.manager.GetOrCreate(token)
	if err != nil {
		h.logger.Error("cart: failed to create session", "error", err)
		http.Error(w, "Cart error", http.StatusInternalServerError)
		return
	}
	if newToken != token {
		SetCartCookie(w, h.cookies, newToken)
	}

	session.AddItem(item)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Increase handles POST /cart/items/{id}/increase
func (h *CartHandler) Increase(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *cart.Session, id string) { s.IncreaseQty(id) })
}

// Decrease handles POST /cart/items/{id}/decrease
func (h *CartHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *cart.Session, id string) { s.DecreaseQty(id) })
}

// Remove handles POST /cart/items/{id}/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *cart.Session, id string) { s.RemoveItem(id) })
}

// mutate applies a quantity mutation to the visitor's cart and redirects
// back to the cart page. A missing session means the cart expired; the
// redirect shows the empty cart.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(*cart.Session, string)) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}

	if token := GetCartTokenFromCookie(r); token != "" {
		if session := h.manager.Get(token); session != nil {
			fn(session, id)
		}
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) addLookupError(w http.ResponseWriter, r *http.Request, err error, id string) {
	if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrRemedyNotFound) || domain.IsCode(err, domain.ENOTFOUND) {
		http.NotFound(w, r)
		return
	}
	h.logger.Error("cart: item lookup failed", "id", id, "error", err)
	http.Error(w, "Failed to add item", http.StatusInternalServerError)
}
