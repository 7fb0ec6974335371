package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/samsaracrafts/storefront/internal/handler"
	"github.com/samsaracrafts/storefront/internal/storage"
)

// RemedyHandler handles the admin remedy CRUD surface.
type RemedyHandler struct {
	remedies domain.RemedyService
	store    storage.Storage
	renderer *handler.Renderer
	logger   *slog.Logger
}

// NewRemedyHandler creates a new admin remedy handler.
func NewRemedyHandler(remedies domain.RemedyService, store storage.Storage, renderer *handler.Renderer, logger *slog.Logger) *RemedyHandler {
	return &RemedyHandler{
		remedies: remedies,
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// List handles GET /admin/remedies
func (h *RemedyHandler) List(w http.ResponseWriter, r *http.Request) {
	remedies, err := h.remedies.ListRemedies(r.Context())
	if err != nil {
		h.logger.Error("admin: failed to list remedies", "error", err)
		http.Error(w, "Failed to load remedies", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Remedies"] = remedies

	h.renderer.RenderHTTP(w, "admin/remedies", data)
}

// New handles GET /admin/remedies/new
func (h *RemedyHandler) New(w http.ResponseWriter, r *http.Request) {
	data := BaseTemplateData(r)
	data["Action"] = "/admin/remedies"

	h.renderer.RenderHTTP(w, "admin/remedy_form", data)
}

// Create handles POST /admin/remedies
func (h *RemedyHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseForm(w, r, "")
	if !ok {
		return
	}

	if _, err := h.remedies.CreateRemedy(r.Context(), input); err != nil {
		h.formError(w, r, "/admin/remedies", input, err)
		return
	}

	http.Redirect(w, r, "/admin/remedies", http.StatusSeeOther)
}

// Edit handles GET /admin/remedies/{id}/edit
func (h *RemedyHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	remedy, err := h.remedies.GetRemedy(r.Context(), id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("admin: failed to load remedy", "id", id, "error", err)
		http.Error(w, "Failed to load remedy", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Remedy"] = remedy
	data["Action"] = "/admin/remedies/" + id

	h.renderer.RenderHTTP(w, "admin/remedy_form", data)
}

// Update handles POST /admin/remedies/{id}
func (h *RemedyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	input, ok := h.parseForm(w, r, id)
	if !ok {
		return
	}

	if _, err := h.remedies.UpdateRemedy(r.Context(), id, input); err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.formError(w, r, "/admin/remedies/"+id, input, err)
		return
	}

	http.Redirect(w, r, "/admin/remedies", http.StatusSeeOther)
}

// Delete handles POST /admin/remedies/{id}/delete
func (h *RemedyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.remedies.DeleteRemedy(r.Context(), id); err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("admin: failed to delete remedy", "id", id, "error", err)
		http.Error(w, "Failed to delete remedy", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/remedies", http.StatusSeeOther)
}

func (h *RemedyHandler) parseForm(w http.ResponseWriter, r *http.Request, id string) (domain.RemedyInput, bool) {
	var input domain.RemedyInput

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return input, false
	}

	priceCents, err := parsePriceCents(r.FormValue("price"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return input, false
	}

	imageURL := r.FormValue("image_url")
	uploaded, err := saveImageUpload(r.Context(), h.store, r, "image", "remedies")
	if err != nil {
		h.logger.Error("admin: remedy image upload failed", "id", id, "error", err)
		http.Error(w, "Image upload failed", http.StatusBadRequest)
		return input, false
	}
	if uploaded != "" {
		imageURL = uploaded
	}

	input = domain.RemedyInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		PriceCents:  priceCents,
		ImageURL:    imageURL,
	}
	return input, true
}

func (h *RemedyHandler) formError(w http.ResponseWriter, r *http.Request, action string, input domain.RemedyInput, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Code == domain.EINTERNAL {
		h.logger.Error("admin: remedy save failed", "error", err)
		http.Error(w, "Failed to save remedy", http.StatusInternalServerError)
		return
	}

	data := BaseTemplateData(r)
	data["Error"] = domain.ErrorMessage(err)
	data["Input"] = input
	data["Action"] = action

	w.WriteHeader(http.StatusBadRequest)
	h.renderer.RenderHTTP(w, "admin/remedy_form", data)
}
