package middleware

import "net/http"

// Common size limits
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize covers ordinary form posts (1MB)
	DefaultMaxBodySize = 1 * MB

	// UploadMaxBodySize covers admin image uploads (20MB)
	UploadMaxBodySize = 20 * MB
)

// MaxBodySize limits the size of request bodies.
// If the request body exceeds maxBytes, the handler's body read fails and
// oversized Content-Length requests are rejected up front with 413.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
