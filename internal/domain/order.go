package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func OrderTypes() []OrderType {
	return []OrderType{OrderTypeDineIn, OrderTypeTakeaway}
}

func ValidOrderType(t OrderType) bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentGPay       PaymentMethod = "upi-gpay"
	PaymentPhonePe    PaymentMethod = "upi-phonepe"
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentDebitCard  PaymentMethod = "debit-card"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentGPay,
		PaymentPhonePe,
		PaymentCreditCard,
		PaymentDebitCard,
	}
}

func ValidPaymentMethod(m PaymentMethod) bool {
	for _, known := range PaymentMethods() {
		if m == known {
			return true
		}
	}
	return false
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderLine snapshots a cart line at checkout time. UnitPrice is the menu
// price at the moment the order was built, so later catalog changes never
// alter past orders.
type OrderLine struct {
	MenuItemID string          `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Order is an immutable record of a completed checkout. It is created
// exactly once, appended to the order store, and never mutated or deleted.
type Order struct {
	ID            string          `json:"id"`
	Customer      Customer        `json:"customer"`
	OrderType     OrderType       `json:"orderType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	GSTAmount     decimal.Decimal `json:"gstAmount"`
	Total         decimal.Decimal `json:"total"`
	Lines         []OrderLine     `json:"orderItems"`
	CreatedAt     time.Time       `json:"createdAt"`
}
