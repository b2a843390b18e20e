package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusFailed    = "failed"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 10
)

// OrderItem is a value object embedded in an Order. The slug references a
// catalog watch but is not checked against it.
type OrderItem struct {
	Slug     string  `bson:"slug" json:"slug"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

func (i *OrderItem) Validate() error {
	if i.Slug == "" {
		return invalid("slug", "is required")
	}
	if i.Name == "" {
		return invalid("name", "is required")
	}
	if i.Price < 0 {
		return invalid("price", "must be non-negative")
	}
	if i.Quantity < MinItemQuantity || i.Quantity > MaxItemQuantity {
		return invalid("quantity", fmt.Sprintf("must be between %d and %d", MinItemQuantity, MaxItemQuantity))
	}
	return nil
}

// Order is a customer checkout record in the "order" collection.
// Append-only: created once per checkout, never updated or deleted.
// The subtotal is always computed server-side.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email"`
	CustomerPhone string             `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Normalize applies schema defaults. Checkout overrides the status
// explicitly; the default only matters for records built elsewhere.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

func (o *Order) Validate() error {
	if o.CustomerName == "" {
		return invalid("customer_name", "is required")
	}
	if o.CustomerEmail == "" {
		return invalid("customer_email", "is required")
	}
	for n, item := range o.Items {
		if err := item.Validate(); err != nil {
			ve := err.(*ValidationError)
			return invalid(fmt.Sprintf("items[%d].%s", n, ve.Field), ve.Message)
		}
	}
	if o.Subtotal < 0 {
		return invalid("subtotal", "must be non-negative")
	}
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusFailed:
	default:
		return invalid("status", "must be one of pending, confirmed, failed")
	}
	return nil
}
