package storefront

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/checkout"
	"github.com/samsaracrafts/storefront/internal/cookie"
)

func TestCheckoutHandler_WhatsApp(t *testing.T) {
	manager := cart.NewManager(0)
	whatsapp := checkout.NewWhatsApp("919876543210", "Samsara Crafts")
	h := NewCheckoutHandler(manager, whatsapp, testLogger())

	t.Run("cart with items redirects to wa.me", func(t *testing.T) {
		session, token, err := manager.GetOrCreate("")
		if err != nil {
			t.Fatal(err)
		}
		session.AddItem(cart.LineItem{ID: "p1", Title: "Bead Set", UnitPriceCents: 29900})

		req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", nil)
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: token})
		w := httptest.NewRecorder()

		h.WhatsApp(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}
		loc := w.Header().Get("Location")
		if !strings.HasPrefix(loc, "https://wa.me/919876543210?text=") {
			t.Errorf("expected wa.me redirect, got %q", loc)
		}
		if !strings.Contains(loc, "Bead%20Set") {
			t.Errorf("expected item title in encoded message, got %q", loc)
		}
	})

	t.Run("empty cart redirects back to cart page", func(t *testing.T) {
		_, token, err := manager.GetOrCreate("")
		if err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", nil)
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: token})
		w := httptest.NewRecorder()

		h.WhatsApp(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/cart" {
			t.Errorf("expected redirect to /cart, got %q", loc)
		}
	})

	t.Run("no cookie redirects back to cart page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/checkout/whatsapp", nil)
		w := httptest.NewRecorder()

		h.WhatsApp(w, req)

		if loc := w.Header().Get("Location"); loc != "/cart" {
			t.Errorf("expected redirect to /cart, got %q", loc)
		}
	})
}
