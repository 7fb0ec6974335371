// Package middleware holds the HTTP middleware shared by storefront and
// admin routes.
package middleware

type contextKey string
