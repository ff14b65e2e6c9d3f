package models

import (
	"time"
)

// CartLine is a product snapshot plus quantity. At most one line exists per product id.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

type OrderStatus string

const (
	StatusProcessing OrderStatus = "В обработке"
	StatusAssembled  OrderStatus = "Собран"
	StatusInTransit  OrderStatus = "В пути"
	StatusDelivered  OrderStatus = "Доставлен"
)

// StatusFlow is the admin cycling order; Next wraps from the last back to the first.
var StatusFlow = []OrderStatus{StatusProcessing, StatusAssembled, StatusInTransit, StatusDelivered}

// Next returns the status following s. Unknown or empty statuses are treated as StatusProcessing.
func (s OrderStatus) Next() OrderStatus {
	idx := 0
	for i, st := range StatusFlow {
		if st == s {
			idx = i
			break
		}
	}
	return StatusFlow[(idx+1)%len(StatusFlow)]
}

type Order struct {
	ID        int64       `json:"id"`
	Items     []CartLine  `json:"items"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	Customer  Recipient   `json:"customer"`
	CreatedAt time.Time   `json:"created_at"`
}

// Recipient is the delivery data captured by the checkout form.
type Recipient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Comment string `json:"comment,omitempty"`
}

// Event types published to the storefront exchange.
const (
	EventCartItemAdded        = "cart.item_added"
	EventOrderCreated         = "order.created"
	EventOrderStatusChanged   = "order.status_changed"
	EventOrderDeleted         = "order.deleted"
	EventNewsletterSubscribed = "newsletter.subscribed"
)

type StorefrontEvent struct {
	Type      string      `json:"type"`
	ProfileID string      `json:"profile_id"`
	OrderID   int64       `json:"order_id,omitempty"`
	ProductID int64       `json:"product_id,omitempty"`
	Status    OrderStatus `json:"status,omitempty"`
	Total     int64       `json:"total,omitempty"`
	Message   string      `json:"message,omitempty"`
	Occurred  time.Time   `json:"occurred"`
}
