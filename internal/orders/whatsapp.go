package orders

import (
	"fmt"
	"net/url"
	"strings"

	"storefront-service/internal/models"
)

// WhatsAppLink builds the wa.me chat link for an order message. The
// configured number may carry a country prefix, spaces, or dashes; only
// its digits go into the URL.
func WhatsAppLink(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

// BuildOrderMessage assembles the pre-filled order text for a normalized
// product with the customer's color and size selections.
func BuildOrderMessage(storeName string, p models.NormalizedProduct, color, size, productURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ *New Order from %s*\n\n", storeName)
	fmt.Fprintf(&b, "📦 *Product:* %s\n", p.Name)
	fmt.Fprintf(&b, "💰 *Price:* ₹%.0f\n", orderPrice(p))
	fmt.Fprintf(&b, "🎨 *Color:* %s\n", color)
	fmt.Fprintf(&b, "📏 *Size:* %s\n", size)
	if p.CategoryLabel != "" {
		fmt.Fprintf(&b, "🏷️ *Category:* %s\n", p.CategoryLabel)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\n📝 *Product Description:*\n%s\n", p.Description)
	}
	if productURL != "" {
		fmt.Fprintf(&b, "\n🔗 *Product Link:* %s\n", productURL)
	}
	fmt.Fprintf(&b, "\n---\nPlease confirm this order and provide delivery details.\nThank you for choosing %s! 🌟", storeName)
	return b.String()
}

// orderPrice picks the price quoted in the order message: the sale price
// when the product is on sale, the actual price otherwise.
func orderPrice(p models.NormalizedProduct) float64 {
	if p.OnSale && p.SalePrice < p.ActualPrice {
		return p.SalePrice
	}
	return p.ActualPrice
}
