package admin

import (
	"log/slog"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/cookie"
	"github.com/samsaracrafts/storefront/internal/handler"
	"github.com/samsaracrafts/storefront/internal/middleware"
)

// adminSessionMaxAge keeps an admin logged in for 12 hours.
const adminSessionMaxAge = 60 * 60 * 12

// AuthHandler handles admin login and logout. Authentication is a single
// shared secret; there are no admin user accounts.
type AuthHandler struct {
	secret   string
	renderer *handler.Renderer
	cookies  *cookie.Config
	logger   *slog.Logger
}

// NewAuthHandler creates a new admin auth handler.
func NewAuthHandler(secret string, renderer *handler.Renderer, cookies *cookie.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		secret:   secret,
		renderer: renderer,
		cookies:  cookies,
		logger:   logger,
	}
}

// ShowLogin handles GET /admin/login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "admin/login", BaseTemplateData(r))
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if !middleware.VerifyAdminSecret(h.secret, r.FormValue("secret")) {
		h.logger.Warn("admin: failed login attempt", "remote", r.RemoteAddr)

		data := BaseTemplateData(r)
		data["Error"] = "Invalid secret"
		w.WriteHeader(http.StatusUnauthorized)
		h.renderer.RenderHTTP(w, "admin/login", data)
		return
	}

	h.cookies.SetSession(w, cookie.AdminCookieName, middleware.AdminSessionValue(h.secret), adminSessionMaxAge)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearSession(w, cookie.AdminCookieName)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
