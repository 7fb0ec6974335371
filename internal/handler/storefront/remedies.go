package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
)

// RemedyHandler serves the remedy listing and detail pages.
type RemedyHandler struct {
	remedies domain.RemedyService
	renderer *handler.Renderer
	logger   *slog.Logger
}

// NewRemedyHandler creates a new remedy browsing handler.
func NewRemedyHandler(remedies domain.RemedyService, renderer *handler.Renderer, logger *slog.Logger) *RemedyHandler {
	return &RemedyHandler{
		remedies: remedies,
		renderer: renderer,
		logger:   logger,
	}
}

// List handles GET /remedies
func (h *RemedyHandler) List(w http.ResponseWriter, r *http.Request) {
	remedies, err := h.remedies.ListRemedies(r.Context())
	if err != nil {
		h.logger.Error("remedies: failed to list", "error", err)
		http.Error(w, "Failed to load remedies", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Remedies"] = remedies

	h.renderer.RenderHTTP(w, "storefront/remedies", data)
}

// Detail handles GET /remedies/{id}
func (h *RemedyHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	remedy, err := h.remedies.GetRemedy(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRemedyNotFound) || domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("remedies: failed to load detail", "id", id, "error", err)
		http.Error(w, "Failed to load remedy", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Remedy"] = remedy

	h.renderer.RenderHTTP(w, "storefront/remedy_detail", data)
}
