package storefront

import (
	"net/http"
	"time"

	"github.com/samsaracrafts/storefront/internal/cookie"
)

// BaseTemplateData returns common data for all storefront templates.
func BaseTemplateData(r *http.Request) map[string]interface{} {
	data := map[string]interface{}{
		"Year": time.Now().Year(),
	}

	if flash := cookie.Get(r, cookie.FlashCookieName); flash != "" {
		data["Flash"] = flash
	}

	return data
}
