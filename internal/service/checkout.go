package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/catalog"
	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/pricing"
	"github.com/Raguramgit/retro-restaurant/internal/repo"
	"github.com/Raguramgit/retro-restaurant/internal/whatsapp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutService struct {
	orders     repo.OrderRepository
	catalog    *catalog.Catalog
	gstRate    decimal.Decimal
	restaurant whatsapp.Info
	logger     *zap.SugaredLogger
}

func NewCheckoutService(
	orders repo.OrderRepository,
	menu *catalog.Catalog,
	gstRate decimal.Decimal,
	restaurant whatsapp.Info,
	logger *zap.SugaredLogger,
) *CheckoutService {
	return &CheckoutService{
		orders:     orders,
		catalog:    menu,
		gstRate:    gstRate,
		restaurant: restaurant,
		logger:     logger,
	}
}

// CheckoutResult is a placed order plus the prefilled bill link handed back
// to the customer.
type CheckoutResult struct {
	Order       domain.Order
	WhatsAppURL string
}

// PlaceOrder validates the checkout, snapshots the cart into an immutable
// order, persists it and builds the WhatsApp hand-off link.
//
// All validation happens before any side effect. A store write failure is
// logged and swallowed: the customer still gets their confirmation and bill,
// because losing a local record beats blocking the order. The caller clears
// the cart only after PlaceOrder returns without error.
func (s *CheckoutService) PlaceOrder(
	ctx context.Context,
	cart *domain.Cart,
	customer domain.Customer,
	orderType domain.OrderType,
	paymentMethod domain.PaymentMethod,
) (*CheckoutResult, error) {
	if cart.Empty() {
		return nil, domain.NewValidationError("cart", "cart is empty")
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return nil, domain.NewValidationError("phone", "phone is required")
	}
	if !domain.ValidOrderType(orderType) {
		return nil, domain.NewValidationError("orderType", fmt.Sprintf("unknown order type %q", orderType))
	}
	if !domain.ValidPaymentMethod(paymentMethod) {
		return nil, domain.NewValidationError("paymentMethod", fmt.Sprintf("unknown payment method %q", paymentMethod))
	}
	if _, err := whatsapp.NormalizePhone(customer.Phone); err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(cart.Lines()))
	for _, cartLine := range cart.Lines() {
		lines = append(lines, domain.OrderLine{
			MenuItemID: cartLine.Item.ID,
			Quantity:   cartLine.Quantity,
			UnitPrice:  cartLine.Item.Price,
			TotalPrice: cartLine.Total(),
		})
	}

	quote := pricing.Calculate(cart.Subtotal(), s.gstRate)

	order := domain.Order{
		ID:            uuid.NewString(),
		Customer:      customer,
		OrderType:     orderType,
		PaymentMethod: paymentMethod,
		Subtotal:      quote.Subtotal,
		GSTAmount:     quote.GSTAmount,
		Total:         quote.Total,
		Lines:         lines,
		CreatedAt:     time.Now(),
	}

	if err := s.orders.Append(ctx, &order); err != nil {
		s.logger.Warnw("failed to persist order, continuing", "order_id", order.ID, "error", err)
	}

	message := whatsapp.FormatOrderMessage(order, s.catalog, s.restaurant)
	url, err := whatsapp.ShareLink(customer.Phone, message)
	if err != nil {
		// phone already normalized above, so this cannot fire
		return nil, err
	}

	s.logger.Infow("order placed", "order_id", order.ID, "total", order.Total.StringFixed(2), "items", len(order.Lines))

	return &CheckoutResult{Order: order, WhatsAppURL: url}, nil
}

// ListOrders returns the full order history, oldest first.
func (s *CheckoutService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return order, nil
}
