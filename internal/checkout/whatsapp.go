// Package checkout hands a cart off to WhatsApp as a prefilled order message.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/domain"
)

// WhatsApp builds wa.me links that open a chat with the store's business
// number, prefilled with the visitor's order.
type WhatsApp struct {
	number    string
	storeName string
}

// NewWhatsApp creates the handoff builder. number is the business phone
// number with country code; any formatting characters are stripped.
func NewWhatsApp(number, storeName string) *WhatsApp {
	return &WhatsApp{
		number:    sanitizeNumber(number),
		storeName: storeName,
	}
}

// OrderURL renders the cart into an order message and returns a wa.me link
// with the message percent-encoded in the text parameter.
func (w *WhatsApp) OrderURL(summary cart.Summary) (string, error) {
	const op = "checkout.order_url"

	if w.number == "" {
		return "", domain.Internal(nil, op, "whatsapp number is not configured")
	}
	if len(summary.Items) == 0 {
		return "", domain.Invalid(op, "cart is empty")
	}

	msg := w.OrderMessage(summary)
	return "https://wa.me/" + w.number + "?text=" + encodeText(msg), nil
}

// OrderMessage renders the cart as the plain text body of the order.
func (w *WhatsApp) OrderMessage(summary cart.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New order from %s\n\n", w.storeName)
	for i, item := range summary.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   Qty: %d x %s = %s\n",
			item.Quantity,
			FormatPrice(item.UnitPriceCents),
			FormatPrice(item.UnitPriceCents*int64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\nTotal items: %d\n", summary.ItemCount)
	fmt.Fprintf(&b, "Order total: %s\n", FormatPrice(summary.SubtotalCents))

	return b.String()
}

// FormatPrice renders a price in minor units as a rupee amount, e.g. "₹299.00".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, cents/100, cents%100)
}

// encodeText percent-encodes a message for the wa.me text parameter.
// url.QueryEscape emits "+" for spaces, which WhatsApp renders literally,
// so spaces are re-encoded as %20.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// sanitizeNumber keeps only digits so "+91 98765-43210" becomes "919876543210".
func sanitizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
