package admin

import (
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/email"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// SubscriberHandler lists newsletter subscribers and sends broadcasts.
type SubscriberHandler struct {
	subscribers domain.SubscriberService
	newsletter  *email.Newsletter
	renderer    *handler.Renderer
	logger      *slog.Logger
}

// NewSubscriberHandler creates a new admin subscriber handler.
func NewSubscriberHandler(subscribers domain.SubscriberService, newsletter *email.Newsletter, renderer *handler.Renderer, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		subscribers: subscribers,
		newsletter:  newsletter,
		renderer:    renderer,
		logger:      logger,
	}
}

// List handles GET /admin/subscribers
func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscribers.ListSubscribers(r.Context())
	if err != nil {
		h.logger.Error("admin: failed to list subscribers", "error", err)
		http.Error(w, "Failed to load subscribers", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Subscribers"] = subscribers

	h.renderer.RenderHTTP(w, "admin/subscribers", data)
}

// ShowBroadcast handles GET /admin/newsletter
func (h *SubscriberHandler) ShowBroadcast(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "admin/newsletter", BaseTemplateData(r))
}

// Broadcast handles POST /admin/newsletter
func (h *SubscriberHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input := email.NewsletterInput{
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("body"),
	}

	sent, err := h.newsletter.Broadcast(r.Context(), input)
	if err != nil {
		if domain.IsCode(err, domain.EINVALID) {
			data := BaseTemplateData(r)
			data["Error"] = domain.ErrorMessage(err)
			data["Input"] = input
			w.WriteHeader(http.StatusBadRequest)
			h.renderer.RenderHTTP(w, "admin/newsletter", data)
			return
		}
		h.logger.Error("admin: newsletter broadcast failed", "error", err)
		http.Error(w, "Broadcast failed", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin: newsletter sent", "recipients", sent)

	data := BaseTemplateData(r)
	data["Sent"] = sent
	h.renderer.RenderHTTP(w, "admin/newsletter", data)
}
