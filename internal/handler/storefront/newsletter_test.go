package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/samsaracrafts/storefront/internal/domain"
)

// mockSubscriberService implements domain.SubscriberService for testing
type mockSubscriberService struct {
	subscribeFunc func(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error)
}

func (m *mockSubscriberService) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return nil, nil
}

func (m *mockSubscriberService) Subscribe(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, input)
	}
	return &domain.Subscriber{Email: input.Email}, nil
}

func (m *mockSubscriberService) Unsubscribe(ctx context.Context, email string) error {
	return nil
}

func postSubscribe(h *NewsletterHandler, email string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/newsletter/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Subscribe(w, req)
	return w
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewNewsletterHandler(&mockSubscriberService{}, testRenderer(t), testLogger())

		w := postSubscribe(h, "a@example.com")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Thanks for subscribing") {
			t.Errorf("expected thank-you message, got %q", w.Body.String())
		}
	})

	t.Run("duplicate reads as already subscribed", func(t *testing.T) {
		subs := &mockSubscriberService{
			subscribeFunc: func(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error) {
				return nil, domain.ErrSubscriberExists
			},
		}
		h := NewNewsletterHandler(subs, testRenderer(t), testLogger())

		w := postSubscribe(h, "a@example.com")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "already subscribed") {
			t.Errorf("expected already-subscribed message, got %q", w.Body.String())
		}
	})

	t.Run("invalid email shows validation message", func(t *testing.T) {
		subs := &mockSubscriberService{
			subscribeFunc: func(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error) {
				return nil, domain.Invalid("subscriber.subscribe", "email must be a valid email address")
			},
		}
		h := NewNewsletterHandler(subs, testRenderer(t), testLogger())

		w := postSubscribe(h, "not-an-email")

		if !strings.Contains(w.Body.String(), "valid email") {
			t.Errorf("expected validation message, got %q", w.Body.String())
		}
	})
}
