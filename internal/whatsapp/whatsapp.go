// Package whatsapp renders an order into a shareable bill message and builds
// the wa.me hand-off link. Nothing here sends anything; the link is opened by
// the customer's own messaging client.
package whatsapp

import (
	"fmt"
	"strings"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/pricing"
)

// Info is the restaurant identity printed on every bill.
type Info struct {
	Name    string
	Address string
}

// ItemResolver looks menu item names up by id. Orders outlive catalogs, so a
// missing id must not be an error.
type ItemResolver interface {
	Lookup(id string) (domain.MenuItem, bool)
}

// NormalizePhone reduces a phone number to bare digits for the wa.me link.
// Ten-digit numbers are assumed Indian and get the "91" country code
// prefixed. Anything outside 10..15 digits after stripping is rejected.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()

	if len(normalized) == 10 && !strings.HasPrefix(normalized, "91") {
		normalized = "91" + normalized
	}

	if len(normalized) < 10 || len(normalized) > 15 {
		return "", domain.NewValidationError("phone", "invalid phone number format")
	}

	return normalized, nil
}

// displayCase turns enum values like "dine-in" into "DINE IN".
func displayCase(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", " "))
}

// FormatOrderMessage renders the order confirmation text. The GST percentage
// is recomputed from the stored amounts rather than re-read from
// configuration, so an old bill stays correct after a rate change.
func FormatOrderMessage(order domain.Order, items ItemResolver, info Info) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n", info.Name)
	b.WriteString("*Order Confirmation*\n\n")
	fmt.Fprintf(&b, "*Customer:* %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "*Phone:* %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "*Order ID:* %s\n", order.ID)
	fmt.Fprintf(&b, "*Type:* %s\n", displayCase(string(order.OrderType)))
	fmt.Fprintf(&b, "*Payment:* %s\n\n", displayCase(string(order.PaymentMethod)))

	b.WriteString("*Order Items:*\n")
	for i, line := range order.Lines {
		name := "Item"
		if item, ok := items.Lookup(line.MenuItemID); ok {
			name = item.Name
		}
		fmt.Fprintf(&b, "%d. %dx %s - ₹%s\n", i+1, line.Quantity, name, line.TotalPrice.StringFixed(2))
	}

	gstRate := pricing.EffectiveRatePercent(order.Subtotal, order.GSTAmount)
	b.WriteString("\n*Bill Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: ₹%s\n", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "GST (%s%%): ₹%s\n", gstRate.StringFixed(1), order.GSTAmount.StringFixed(2))
	fmt.Fprintf(&b, "*Total: ₹%s*\n\n", order.Total.StringFixed(2))

	b.WriteString("*Restaurant Address:*\n")
	fmt.Fprintf(&b, "%s\n\n", info.Address)
	b.WriteString("Thank you for ordering with us!")

	return b.String()
}

// messageEscaper percent-encodes only the three characters wa.me requires.
var messageEscaper = strings.NewReplacer(
	"\n", "%0A",
	" ", "%20",
	"*", "%2A",
)

// ShareLink builds the prefilled-message URL for the given customer phone.
func ShareLink(phone, message string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", normalized, messageEscaper.Replace(message)), nil
}
