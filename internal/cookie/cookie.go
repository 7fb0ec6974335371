// Package cookie centralizes cookie handling so every session cookie in the
// app gets the same scoping and security attributes.
package cookie

import (
	"net/http"
	"time"
)

// Common cookie names used throughout the application.
const (
	// AdminCookieName holds the admin session token.
	AdminCookieName = "samsara_admin"

	// CartCookieName holds the anonymous cart token for visitors.
	CartCookieName = "samsara_cart"

	// FlashCookieName carries a one-shot flash message between redirects.
	FlashCookieName = "samsara_flash"
)

// Config holds cookie defaults shared by all setters.
type Config struct {
	// Secure requires HTTPS. True in production, false in development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(secure bool) *Config {
	return &Config{Secure: secure}
}

// SetSession sets an HttpOnly session cookie on the root path. maxAge is in
// seconds; zero means a browser-session cookie.
func (c *Config) SetSession(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetSessionWithExpiry sets a session cookie with an explicit expiration
// time instead of a relative MaxAge.
func (c *Config) SetSessionWithExpiry(w http.ResponseWriter, name, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes a cookie by expiring it immediately.
func (c *Config) ClearSession(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get retrieves a cookie value from the request.
// Returns empty string if the cookie is not present.
func Get(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
