package models

type LocationCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address"`
}

type DeliveryPerson struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Photo *string `json:"photo"`
}

// OrderDeliveryStatus is one entry in an order's tracking history. Entries
// are chronological and served in fixture order.
type OrderDeliveryStatus struct {
	Status      OrderStatus `json:"status"`
	Location    string      `json:"location"`
	Timestamp   int64       `json:"timestamp"`
	IsCompleted bool        `json:"isCompleted"`
}

// OrderDelivery is the tracking record for a single order, keyed by OrderID.
type OrderDelivery struct {
	OrderID         string                `json:"orderId"`
	CurrentLocation LocationCoordinate    `json:"currentLocation"`
	Destination     LocationCoordinate    `json:"destination"`
	DeliveryPerson  *DeliveryPerson       `json:"deliveryPerson"`
	StatusHistory   []OrderDeliveryStatus `json:"statusHistory"`
}
