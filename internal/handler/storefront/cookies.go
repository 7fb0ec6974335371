package storefront

import (
	"net/http"

	"github.com/samsaracrafts/storefront/internal/cookie"
)

// cartCookieMaxAge keeps the cart cookie alive a little longer than the
// in-memory session TTL so a returning visitor gets a clean new cart
// instead of a half-expired one.
const cartCookieMaxAge = 60 * 60 * 48 // 48 hours in seconds

// GetCartTokenFromCookie returns the visitor's cart token, or empty string.
func GetCartTokenFromCookie(r *http.Request) string {
	return cookie.Get(r, cookie.CartCookieName)
}

// SetCartCookie writes the cart token back to the visitor.
func SetCartCookie(w http.ResponseWriter, cookies *cookie.Config, token string) {
	cookies.SetSession(w, cookie.CartCookieName, token, cartCookieMaxAge)
}
