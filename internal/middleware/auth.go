package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/samsaracrafts/storefront/internal/cookie"
)

// AdminSessionValue derives the opaque cookie value for an authenticated
// admin session from the configured secret. Storing a digest rather than the
// secret itself keeps the raw secret out of the browser.
func AdminSessionValue(secret string) string {
	sum := sha256.Sum256([]byte("admin-session:" + secret))
	return hex.EncodeToString(sum[:])
}

// RequireAdmin gates a route behind the admin session cookie. Requests
// without a valid session are redirected to the login page.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	expected := []byte(AdminSessionValue(secret))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := cookie.Get(r, cookie.AdminCookieName)
			if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// VerifyAdminSecret checks a submitted login secret in constant time.
func VerifyAdminSecret(configured, submitted string) bool {
	a := sha256.Sum256([]byte(configured))
	b := sha256.Sum256([]byte(submitted))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
