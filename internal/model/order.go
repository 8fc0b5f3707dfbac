package model

import (
	"math"
	"time"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusFulfilled = "Fulfilled"
)

type Order struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem captures quantity and unit price at checkout time; later product
// price changes never touch it.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CheckoutLine is one cart line as read inside the checkout transaction.
type CheckoutLine struct {
	ProductID int64
	Quantity  int
	Price     float64
}

// CheckoutTotal sums price x quantity over the lines, rounded to cents.
func CheckoutTotal(lines []CheckoutLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return math.Round(total*100) / 100
}
