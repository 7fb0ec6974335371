package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// NewsletterHandler handles newsletter signups from the storefront footer.
type NewsletterHandler struct {
	subscribers domain.SubscriberService
	renderer    *handler.Renderer
	logger      *slog.Logger
}

// NewNewsletterHandler creates a new newsletter signup handler.
func NewNewsletterHandler(subscribers domain.SubscriberService, renderer *handler.Renderer, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		subscribers: subscribers,
		renderer:    renderer,
		logger:      logger,
	}
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input := domain.SubscriberInput{Email: r.FormValue("email")}

	_, err := h.subscribers.Subscribe(r.Context(), input)
	switch {
	case err == nil:
		h.renderResult(w, r, "Thanks for subscribing!")
	case errors.Is(err, domain.ErrSubscriberExists):
		// Already on the list reads as success to the visitor.
		h.renderResult(w, r, "You're already subscribed.")
	case domain.IsCode(err, domain.EINVALID):
		h.renderResult(w, r, "Please enter a valid email address.")
	default:
		h.logger.Error("newsletter: subscribe failed", "error", err)
		http.Error(w, "Subscription failed", http.StatusInternalServerError)
	}
}

// Unsubscribe handles GET /newsletter/unsubscribe?email=...
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email", http.StatusBadRequest)
		return
	}

	if err := h.subscribers.Unsubscribe(r.Context(), email); err != nil {
		h.logger.Error("newsletter: unsubscribe failed", "error", err)
		http.Error(w, "Unsubscribe failed", http.StatusInternalServerError)
		return
	}

	h.renderResult(w, r, "You've been unsubscribed.")
}

func (h *NewsletterHandler) renderResult(w http.ResponseWriter, r *http.Request, message string) {
	data := BaseTemplateData(r)
	data["Message"] = message
	h.renderer.RenderHTTP(w, "storefront/newsletter", data)
}
