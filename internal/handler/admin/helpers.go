package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// BaseTemplateData returns common data for all admin templates.
func BaseTemplateData(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"Year": time.Now().Year(),
		"Path": r.URL.Path,
	}
}

// parsePriceCents parses a decimal rupee amount ("299" or "299.50") into
// integer paise without going through floating point.
func parsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("price is required")
	}

	whole, frac, _ := strings.Cut(s, ".")

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || rupees < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	var paise int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid price %q: at most two decimal places", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		paise, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
	}

	return rupees*100 + paise, nil
}

// parseStock parses a non-negative stock count, defaulting to zero.
func parseStock(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid stock %q", s)
	}
	return int32(n), nil
}
