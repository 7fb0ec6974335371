package storefront

import (
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/checkout"
	"github.com/samsaracrafts/storefront/internal/domain"
)

// CheckoutHandler hands the cart off to WhatsApp. There is no payment flow;
// the visitor finishes the order in chat with the store.
type CheckoutHandler struct {
	manager  *cart.Manager
	whatsapp *checkout.WhatsApp
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(manager *cart.Manager, whatsapp *checkout.WhatsApp, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		manager:  manager,
		whatsapp: whatsapp,
		logger:   logger,
	}
}

// WhatsApp handles POST /checkout/whatsapp by redirecting to the wa.me link
// carrying the rendered order message.
func (h *CheckoutHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	token := GetCartTokenFromCookie(r)
	if token == "" {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	session := h.manager.Get(token)
	if session == nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	link, err := h.whatsapp.OrderURL(session.Summary())
	if err != nil {
		if domain.IsCode(err, domain.EINVALID) {
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}
		h.logger.Error("checkout: failed to build whatsapp link", "error", err)
		http.Error(w, "Checkout unavailable", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, link, http.StatusSeeOther)
}
