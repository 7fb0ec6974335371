package storefront

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/cookie"
	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// mockProductService implements domain.ProductService for testing
type mockProductService struct {
	listFunc   func(ctx context.Context) ([]domain.Product, error)
	searchFunc func(ctx context.Context, query string) ([]domain.Product, error)
	getFunc    func(ctx context.Context, id string) (*domain.Product, error)
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockProductService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	return nil, nil
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	return nil, nil
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id string) error {
	return nil
}

// mockRemedyService implements domain.RemedyService for testing
type mockRemedyService struct {
	getFunc func(ctx context.Context, id string) (*domain.Remedy, error)
}

func (m *mockRemedyService) ListRemedies(ctx context.Context) ([]domain.Remedy, error) {
	return nil, nil
}

func (m *mockRemedyService) GetRemedy(ctx context.Context, id string) (*domain.Remedy, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrRemedyNotFound
}

func (m *mockRemedyService) CreateRemedy(ctx context.Context, input domain.RemedyInput) (*domain.Remedy, error) {
	return nil, nil
}

func (m *mockRemedyService) UpdateRemedy(ctx context.Context, id string, input domain.RemedyInput) (*domain.Remedy, error) {
	return nil, nil
}

func (m *mockRemedyService) DeleteRemedy(ctx context.Context, id string) error {
	return nil
}

// testRenderer builds a renderer over a throwaway template tree with just
// enough structure for the handlers under test.
func testRenderer(t *testing.T) *handler.Renderer {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"layout.html":                `{{define "base"}}{{block "content" .}}{{end}}{{end}}`,
		"admin/layout.html":          `{{define "admin_base"}}{{block "content" .}}{{end}}{{end}}`,
		"storefront/cart.html":       `{{define "content"}}{{if .Summary.Items}}{{range .Summary.Items}}{{.Title}} x{{.Quantity}};{{end}}{{else}}Your cart is empty{{end}}{{end}}`,
		"storefront/newsletter.html": `{{define "content"}}{{.Message}}{{end}}`,
		"storefront/products.html":   `{{define "content"}}{{range .Products}}{{.Title}};{{else}}No products found{{end}}{{end}}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r, err := handler.NewRenderer(dir)
	if err != nil {
		t.Fatalf("failed to build test renderer: %v", err)
	}
	return r
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUUID(t *testing.T, s string) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	if err := id.Scan(s); err != nil {
		t.Fatalf("bad uuid %q: %v", s, err)
	}
	return id
}

func newCartHandler(t *testing.T, manager *cart.Manager, products domain.ProductService, remedies domain.RemedyService) *CartHandler {
	return NewCartHandler(manager, products, remedies, testRenderer(t), cookie.NewConfig(false), testLogger())
}

func cartCookieValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.CartCookieName {
			return c.Value
		}
	}
	return ""
}

func TestCartHandler_View(t *testing.T) {
	manager := cart.NewManager(0)
	h := newCartHandler(t, manager, &mockProductService{}, &mockRemedyService{})

	t.Run("no cookie shows empty cart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()

		h.View(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Your cart is empty") {
			t.Error("expected empty cart message")
		}
	})

	t.Run("live session shows items", func(t *testing.T) {
		session, token, err := manager.GetOrCreate("")
		if err != nil {
			t.Fatal(err)
		}
		session.AddItem(cart.LineItem{ID: "p1", Title: "Bead Set", UnitPriceCents: 29900})
		session.AddItem(cart.LineItem{ID: "p1"})

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: token})
		w := httptest.NewRecorder()

		h.View(w, req)

		if !strings.Contains(w.Body.String(), "Bead Set x2") {
			t.Errorf("expected cart contents, got %q", w.Body.String())
		}
	})
}

func TestCartHandler_Add(t *testing.T) {
	id := "3f1c9a2e-5b7d-4c8e-9f10-1234567890ab"
	products := &mockProductService{
		getFunc: func(ctx context.Context, got string) (*domain.Product, error) {
			if got != id {
				return nil, domain.ErrProductNotFound
			}
			return &domain.Product{
				ID:         testUUID(t, id),
				Title:      "Crystal Clock",
				PriceCents: 15000,
				ImageURL:   "/uploads/clock.jpg",
			}, nil
		},
	}

	manager := cart.NewManager(0)
	h := newCartHandler(t, manager, products, &mockRemedyService{})

	form := url.Values{"id": {id}}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.Add(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/cart" {
		t.Errorf("expected redirect to /cart, got %q", loc)
	}

	token := cartCookieValue(t, w)
	if token == "" {
		t.Fatal("expected a cart cookie to be set")
	}

	session := manager.Get(token)
	if session == nil {
		t.Fatal("expected session for issued token")
	}
	items := session.Items()
	if len(items) != 1 || items[0].Title != "Crystal Clock" || items[0].Quantity != 1 {
		t.Errorf("unexpected cart contents: %+v", items)
	}
	if items[0].UnitPriceCents != 15000 {
		t.Errorf("price must be snapshotted from the catalog, got %d", items[0].UnitPriceCents)
	}
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	h := newCartHandler(t, cart.NewManager(0), &mockProductService{}, &mockRemedyService{})

	form := url.Values{"id": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.Add(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCartHandler_Mutations(t *testing.T) {
	manager := cart.NewManager(0)
	h := newCartHandler(t, manager, &mockProductService{}, &mockRemedyService{})

	session, token, err := manager.GetOrCreate("")
	if err != nil {
		t.Fatal(err)
	}
	session.AddItem(cart.LineItem{ID: "p1", Title: "Bead Set", UnitPriceCents: 29900})

	do := func(action string, fn http.HandlerFunc) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart/items/p1/"+action, nil)
		req.SetPathValue("id", "p1")
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: token})
		w := httptest.NewRecorder()
		fn(w, req)
		return w
	}

	if w := do("increase", h.Increase); w.Code != http.StatusSeeOther {
		t.Fatalf("increase: expected 303, got %d", w.Code)
	}
	if got := session.Items()[0].Quantity; got != 2 {
		t.Errorf("after increase quantity = %d, want 2", got)
	}

	if w := do("decrease", h.Decrease); w.Code != http.StatusSeeOther {
		t.Fatalf("decrease: expected 303, got %d", w.Code)
	}
	if got := session.Items()[0].Quantity; got != 1 {
		t.Errorf("after decrease quantity = %d, want 1", got)
	}

	if w := do("remove", h.Remove); w.Code != http.StatusSeeOther {
		t.Fatalf("remove: expected 303, got %d", w.Code)
	}
	if got := len(session.Items()); got != 0 {
		t.Errorf("after remove len = %d, want 0", got)
	}
}

func TestCartHandler_MutationWithoutSessionRedirects(t *testing.T) {
	h := newCartHandler(t, cart.NewManager(0), &mockProductService{}, &mockRemedyService{})

	req := httptest.NewRequest(http.MethodPost, "/cart/items/p1/increase", nil)
	req.SetPathValue("id", "p1")
	w := httptest.NewRecorder()

	h.Increase(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303 even without a session, got %d", w.Code)
	}
}
