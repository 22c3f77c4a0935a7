package domain

import "time"

// Origin tells which side placed the order.
type Origin string

const (
	OriginCustomer Origin = "customer"
	OriginSalesRep Origin = "sales-representative"
)

type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// Order is the normalized, display-shaped record the board works with.
// Orders live in the remote order service; this service never persists them.
type Order struct {
	ID           string
	CustomerName string
	Origin       Origin
	TotalAmount  float64
	Status       Status
	CreatedAt    time.Time
	LineItems    []LineItem
}
