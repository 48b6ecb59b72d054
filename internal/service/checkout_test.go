package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Raguramgit/retro-restaurant/internal/catalog"
	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/pricing"
	"github.com/Raguramgit/retro-restaurant/internal/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	orders     []domain.Order
	failAppend bool
}

func (r *stubOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubOrderRepo) Append(ctx context.Context, order *domain.Order) error {
	if r.failAppend {
		return errors.New("disk full")
	}
	r.orders = append(r.orders, *order)
	return nil
}

var testRestaurant = whatsapp.Info{
	Name:    "Retro Restaurant",
	Address: "123 Kanyakumari Main Road, Radhapuram, Tamil Nadu 627111",
}

func newCheckoutService(t *testing.T, repo *stubOrderRepo) *CheckoutService {
	t.Helper()

	menu, err := catalog.Load()
	require.NoError(t, err)

	return NewCheckoutService(repo, menu, pricing.DefaultGSTRate, testRestaurant, zap.NewNop().Sugar())
}

func cartWith(t *testing.T, quantities map[string]int) *domain.Cart {
	t.Helper()

	menu, err := catalog.Load()
	require.NoError(t, err)

	cart := domain.NewCart()
	for id, qty := range quantities {
		item, ok := menu.Lookup(id)
		require.True(t, ok)
		for i := 0; i < qty; i++ {
			cart.Add(item)
		}
	}
	return cart
}

var validCustomer = domain.Customer{Name: "Asha", Phone: "9876543210"}

func TestPlaceOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newCheckoutService(t, repo)
	cart := cartWith(t, map[string]int{"2": 2}) // Chicken Biryani, 240 each

	result, err := svc.PlaceOrder(context.Background(), cart, validCustomer, domain.OrderTypeDineIn, domain.PaymentGPay)
	require.NoError(t, err)

	order := result.Order
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "480.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "86.40", order.GSTAmount.StringFixed(2))
	assert.Equal(t, "566.40", order.Total.StringFixed(2))
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, order.Lines, 1)
	assert.Equal(t, "2", order.Lines[0].MenuItemID)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, "240.00", order.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "480.00", order.Lines[0].TotalPrice.StringFixed(2))

	assert.Contains(t, result.WhatsAppURL, "https://wa.me/919876543210?text=")
	assert.Contains(t, result.WhatsAppURL, "%0A")
	assert.Contains(t, result.WhatsAppURL, "%2A")

	require.Len(t, repo.orders, 1)
	assert.Equal(t, order.ID, repo.orders[0].ID)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name     string
		cart     map[string]int
		customer domain.Customer
		orderTyp domain.OrderType
		payment  domain.PaymentMethod
	}{
		{"empty cart", nil, validCustomer, domain.OrderTypeDineIn, domain.PaymentCash},
		{"missing name", map[string]int{"2": 1}, domain.Customer{Phone: "9876543210"}, domain.OrderTypeDineIn, domain.PaymentCash},
		{"blank name", map[string]int{"2": 1}, domain.Customer{Name: "   ", Phone: "9876543210"}, domain.OrderTypeDineIn, domain.PaymentCash},
		{"missing phone", map[string]int{"2": 1}, domain.Customer{Name: "Asha"}, domain.OrderTypeDineIn, domain.PaymentCash},
		{"malformed phone", map[string]int{"2": 1}, domain.Customer{Name: "Asha", Phone: "123"}, domain.OrderTypeDineIn, domain.PaymentCash},
		{"bad order type", map[string]int{"2": 1}, validCustomer, "delivery", domain.PaymentCash},
		{"bad payment method", map[string]int{"2": 1}, validCustomer, domain.OrderTypeDineIn, "bitcoin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubOrderRepo{}
			svc := newCheckoutService(t, repo)

			_, err := svc.PlaceOrder(context.Background(), cartWith(t, tc.cart), tc.customer, tc.orderTyp, tc.payment)

			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			assert.Empty(t, repo.orders, "validation failure must persist nothing")
		})
	}
}

// A store write failure must not fail the checkout: the customer still gets
// their confirmation and bill link.
func TestPlaceOrderSurvivesPersistenceFailure(t *testing.T) {
	repo := &stubOrderRepo{failAppend: true}
	svc := newCheckoutService(t, repo)
	cart := cartWith(t, map[string]int{"2": 2})

	result, err := svc.PlaceOrder(context.Background(), cart, validCustomer, domain.OrderTypeTakeaway, domain.PaymentCash)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Order.ID)
	assert.NotEmpty(t, result.WhatsAppURL)
}

func TestPlaceOrderDoesNotTouchCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newCheckoutService(t, repo)
	cart := cartWith(t, map[string]int{"2": 2, "17": 3})

	_, err := svc.PlaceOrder(context.Background(), cart, validCustomer, domain.OrderTypeDineIn, domain.PaymentCash)
	require.NoError(t, err)

	// clearing is the caller's job, after successful checkout
	assert.Equal(t, 5, cart.ItemCount())
}

func TestGetOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newCheckoutService(t, repo)

	result, err := svc.PlaceOrder(context.Background(), cartWith(t, map[string]int{"2": 1}), validCustomer, domain.OrderTypeDineIn, domain.PaymentCash)
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, order.ID)

	_, err = svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
