package domain

import (
	"strings"
	"time"
)

// OrderStatus is the closed set of states an order moves through. Any status
// may follow any other; the admin UI drives the transitions.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a label to its status, case-insensitively. Unknown
// labels fail with ErrInvalidStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return OrderPending, nil
	case "processing":
		return OrderProcessing, nil
	case "shipped":
		return OrderShipped, nil
	case "cancelled":
		return OrderCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// CustomerDetails is the contact block captured at checkout. Customers have
// no accounts; this is all we know about them.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is a cart snapshot frozen at checkout. Lines are copies with no link
// back to the live cart; status is the only field that changes afterwards.
type Order struct {
	ID         string          `json:"id"`
	Status     OrderStatus     `json:"status"`
	Customer   CustomerDetails `json:"customer"`
	Lines      []CartLine      `json:"lines"`
	TotalCents int64           `json:"totalCents"`
	CreatedAt  time.Time       `json:"createdAt"`
}
