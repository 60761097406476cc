package models

import "fmt"

// OrderStatus represents the canonical lifecycle states of an order.
type OrderStatus string

const (
	StatusPacking   OrderStatus = "PACKING"
	StatusPicked    OrderStatus = "PICKED"
	StatusInTransit OrderStatus = "IN_TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"
)

// ParseOrderStatus validates a fixture value against the known status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPacking, StatusPicked, StatusInTransit, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// RawOrder is the fixture shape of an order: a product reference plus
// status. It is never served directly; see Order.
type RawOrder struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Status    string   `json:"status"`
	Rating    *float64 `json:"rating"`
}

// Order is the derived view served to clients, joined from a RawOrder and
// its product at load time.
type Order struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Size     Size        `json:"size"`
	Price    float64     `json:"price"`
	ImageURL string      `json:"imageUrl"`
	Status   OrderStatus `json:"status"`
	Rating   *float64    `json:"rating,omitempty"`
}
