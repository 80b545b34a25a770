package domain

import "time"

type OrderStatus string

const (
	// OrderStatusPending is the status of every newly placed order. No
	// further transitions happen inside this system.
	OrderStatusPending OrderStatus = "Pending"
)

// CartItem is a single line item of an order.
type CartItem struct {
	MedicineID string  `bson:"medicineId,omitempty"`
	Name       string  `bson:"name"`
	Price      float64 `bson:"price"`
	Quantity   int     `bson:"quantity"`
}

// ShippingAddress is the delivery destination captured with an order.
type ShippingAddress struct {
	FullName   string `bson:"fullName,omitempty"`
	Street     string `bson:"street"`
	City       string `bson:"city"`
	PostalCode string `bson:"postalCode,omitempty"`
	Phone      string `bson:"phone,omitempty"`
}

// Order represents a placed order. UserEmail is a back-reference to
// User.Email, checked at placement time but not enforced by the store.
// ID is assigned by the ledger at insert and never surfaced on placement.
type Order struct {
	ID              string          `bson:"_id,omitempty"`
	UserEmail       string          `bson:"userEmail"`
	Cart            []CartItem      `bson:"cart"`
	TotalPrice      float64         `bson:"totalPrice"`
	ShippingAddress ShippingAddress `bson:"shippingAddress"`
	OrderDate       time.Time       `bson:"orderDate"`
	Status          OrderStatus     `bson:"status"`
}
