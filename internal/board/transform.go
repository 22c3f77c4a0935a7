package board

import (
	"time"

	"vendora/internal/domain"
	"vendora/internal/orderclient"
)

const unknownName = "Unknown"

// Transform normalizes one raw record into a display-shaped order.
// It is total: missing nested fields default rather than fail, so a
// malformed record from the order service can never break the board.
func Transform(raw orderclient.RawOrder) domain.Order {
	o := domain.Order{
		ID:           raw.ID,
		CustomerName: customerName(raw.Customer),
		Origin:       parseOrigin(raw.Origin),
		Status:       domain.ParseStatus(raw.Status),
	}

	if raw.Total != nil {
		o.TotalAmount = *raw.Total
	}

	if ts, err := time.Parse(time.RFC3339, raw.CreatedAt); err == nil {
		o.CreatedAt = ts
	}

	for _, p := range raw.Products {
		item := domain.LineItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
		}
		if p.UnitPrice != nil {
			item.UnitPrice = *p.UnitPrice
		}
		if p.Total != nil {
			item.Total = *p.Total
		} else {
			item.Total = item.UnitPrice * float64(item.Quantity)
		}
		o.LineItems = append(o.LineItems, item)
	}

	return o
}

// TransformAll maps the fetched collection, preserving its order.
func TransformAll(raws []orderclient.RawOrder) []domain.Order {
	orders := make([]domain.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, Transform(raw))
	}
	return orders
}

func customerName(c *orderclient.RawCustomer) string {
	if c == nil {
		return unknownName
	}
	first, last := c.FirstName, c.LastName
	if first == "" {
		first = unknownName
	}
	if last == "" {
		return first
	}
	return first + " " + last
}

func parseOrigin(s string) domain.Origin {
	if s == string(domain.OriginSalesRep) {
		return domain.OriginSalesRep
	}
	return domain.OriginCustomer
}
