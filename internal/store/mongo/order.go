package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "orders"

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection(ordersCollection),
	}
}

// orderDoc is the stored shape of an order. Money is kept as fixed-point
// strings so nothing ever round-trips through binary floats.
type orderDoc struct {
	ID            string         `bson:"_id"`
	Customer      customerDoc    `bson:"customer"`
	OrderType     string         `bson:"order_type"`
	PaymentMethod string         `bson:"payment_method"`
	Subtotal      string         `bson:"subtotal"`
	GSTAmount     string         `bson:"gst_amount"`
	Total         string         `bson:"total"`
	Lines         []orderLineDoc `bson:"order_items"`
	CreatedAt     time.Time      `bson:"created_at"`
}

type customerDoc struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email,omitempty"`
	Address string `bson:"address,omitempty"`
}

type orderLineDoc struct {
	MenuItemID string `bson:"menu_item_id"`
	Quantity   int    `bson:"quantity"`
	UnitPrice  string `bson:"unit_price"`
	TotalPrice string `bson:"total_price"`
}

func toOrderDoc(order *domain.Order) orderDoc {
	lines := make([]orderLineDoc, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineDoc{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.StringFixed(2),
			TotalPrice: line.TotalPrice.StringFixed(2),
		})
	}

	return orderDoc{
		ID: order.ID,
		Customer: customerDoc{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Email:   order.Customer.Email,
			Address: order.Customer.Address,
		},
		OrderType:     string(order.OrderType),
		PaymentMethod: string(order.PaymentMethod),
		Subtotal:      order.Subtotal.StringFixed(2),
		GSTAmount:     order.GSTAmount.StringFixed(2),
		Total:         order.Total.StringFixed(2),
		Lines:         lines,
		CreatedAt:     order.CreatedAt,
	}
}

func (d orderDoc) toDomain() (domain.Order, error) {
	subtotal, err := decimal.NewFromString(d.Subtotal)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s has bad subtotal: %w", d.ID, err)
	}
	gst, err := decimal.NewFromString(d.GSTAmount)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s has bad gst amount: %w", d.ID, err)
	}
	total, err := decimal.NewFromString(d.Total)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s has bad total: %w", d.ID, err)
	}

	lines := make([]domain.OrderLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		unit, err := decimal.NewFromString(line.UnitPrice)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order %s has bad unit price: %w", d.ID, err)
		}
		lineTotal, err := decimal.NewFromString(line.TotalPrice)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order %s has bad line total: %w", d.ID, err)
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  unit,
			TotalPrice: lineTotal,
		})
	}

	return domain.Order{
		ID: d.ID,
		Customer: domain.Customer{
			Name:    d.Customer.Name,
			Phone:   d.Customer.Phone,
			Email:   d.Customer.Email,
			Address: d.Customer.Address,
		},
		OrderType:     domain.OrderType(d.OrderType),
		PaymentMethod: domain.PaymentMethod(d.PaymentMethod),
		Subtotal:      subtotal,
		GSTAmount:     gst,
		Total:         total,
		Lines:         lines,
		CreatedAt:     d.CreatedAt,
	}, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc orderDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order, err := doc.toDomain()
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, toOrderDoc(order)); err != nil {
		return fmt.Errorf("failed to append order: %w", err)
	}

	return nil
}
