package handler

import (
	"html/template"
	"time"

	"github.com/samsaracrafts/storefront/internal/category"
	"github.com/samsaracrafts/storefront/internal/checkout"
)

// TemplateFuncs returns a FuncMap with custom template functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"year": func() int {
			return time.Now().Year()
		},
		"formatPrice": func(cents int64) string {
			return checkout.FormatPrice(cents)
		},
		"mulPrice": func(cents int64, qty int) int64 {
			return cents * int64(qty)
		},
		"div100": func(cents int64) int64 {
			return cents / 100
		},
		"mod100": func(cents int64) int64 {
			return cents % 100
		},
		"categoryParts": func(raw string) []string {
			path, ok := category.ParsePath(raw)
			if !ok {
				return nil
			}
			return path
		},
		"categoryLeaf": func(raw string) string {
			path, ok := category.ParsePath(raw)
			if !ok {
				return raw
			}
			return path.Leaf()
		},
	}
}
