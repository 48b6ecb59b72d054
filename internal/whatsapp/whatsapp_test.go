package whatsapp

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare ten digits", "9876543210", "919876543210", false},
		{"formatted with country code", "+91 98765 43210", "919876543210", false},
		{"letters stripped first", "abc9876543210", "919876543210", false},
		{"already prefixed", "919876543210", "919876543210", false},
		{"too short", "123", "", true},
		{"too long", "1234567890123456", "", true},
		{"empty", "", "", true},
		{"symbols only", "+-() ", "", true},
		{"ten digits starting 91", "9176543210", "9176543210", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				assert.Contains(t, err.Error(), "invalid phone number format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestNormalizePhoneProperty throws garbage at the normalizer: whatever comes
// back without an error must be 10..15 bare digits.
func TestNormalizePhoneProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("0123456789abcXYZ +-()#*.")

	for i := 0; i < 5000; i++ {
		var b strings.Builder
		for n := rng.Intn(25); n > 0; n-- {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		input := b.String()

		got, err := NormalizePhone(input)
		if err != nil {
			assert.True(t, domain.IsValidationError(err), "input %q", input)
			continue
		}

		require.GreaterOrEqual(t, len(got), 10, "input %q", input)
		require.LessOrEqual(t, len(got), 15, "input %q", input)
		for _, r := range got {
			require.True(t, r >= '0' && r <= '9', "input %q produced %q", input, got)
		}
	}
}

type staticResolver map[string]domain.MenuItem

func (r staticResolver) Lookup(id string) (domain.MenuItem, bool) {
	item, ok := r[id]
	return item, ok
}

func testOrder() domain.Order {
	return domain.Order{
		ID: "f6a3a1de-0000-4000-8000-000000000001",
		Customer: domain.Customer{
			Name:  "Asha",
			Phone: "9876543210",
		},
		OrderType:     domain.OrderTypeDineIn,
		PaymentMethod: domain.PaymentGPay,
		Subtotal:      decimal.RequireFromString("480.00"),
		GSTAmount:     decimal.RequireFromString("86.40"),
		Total:         decimal.RequireFromString("566.40"),
		Lines: []domain.OrderLine{
			{
				MenuItemID: "2",
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("240.00"),
				TotalPrice: decimal.RequireFromString("480.00"),
			},
		},
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

var testInfo = Info{
	Name:    "Retro Restaurant",
	Address: "123 Kanyakumari Main Road, Radhapuram, Tamil Nadu 627111",
}

func TestFormatOrderMessage(t *testing.T) {
	resolver := staticResolver{
		"2": {ID: "2", Name: "Chicken Biryani"},
	}

	msg := FormatOrderMessage(testOrder(), resolver, testInfo)

	assert.True(t, strings.HasPrefix(msg, "*Retro Restaurant*\n"))
	assert.Contains(t, msg, "*Customer:* Asha\n")
	assert.Contains(t, msg, "*Phone:* 9876543210\n")
	assert.Contains(t, msg, "*Type:* DINE IN\n")
	assert.Contains(t, msg, "*Payment:* UPI GPAY\n")
	assert.Contains(t, msg, "1. 2x Chicken Biryani - ₹480.00\n")
	assert.Contains(t, msg, "Subtotal: ₹480.00\n")
	assert.Contains(t, msg, "GST (18.0%): ₹86.40\n")
	assert.Contains(t, msg, "*Total: ₹566.40*\n")
	assert.Contains(t, msg, testInfo.Address)
	assert.True(t, strings.HasSuffix(msg, "Thank you for ordering with us!"))

	// deterministic
	assert.Equal(t, msg, FormatOrderMessage(testOrder(), resolver, testInfo))
}

func TestFormatOrderMessageUnknownItemFallsBack(t *testing.T) {
	msg := FormatOrderMessage(testOrder(), staticResolver{}, testInfo)

	assert.Contains(t, msg, "1. 2x Item - ₹480.00\n")
}

func TestShareLink(t *testing.T) {
	link, err := ShareLink("9876543210", "*Retro Restaurant*\nOrder no 1")
	require.NoError(t, err)

	assert.Equal(t, "https://wa.me/919876543210?text=%2ARetro%20Restaurant%2A%0AOrder%20no%201", link)
}

func TestShareLinkPropagatesPhoneError(t *testing.T) {
	_, err := ShareLink("123", "hello there")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}
