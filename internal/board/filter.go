package board

import (
	"strings"
	"time"

	"vendora/internal/domain"
)

// OriginFilter narrows a bucket to orders placed by one side.
type OriginFilter string

const (
	OriginAll      OriginFilter = ""
	OriginSalesRep OriginFilter = "sales-representative"
	OriginCustomer OriginFilter = "customer"
)

// FilterState is the live filter input for one board view. Zero values
// mean "match everything" for that predicate.
type FilterState struct {
	Query  string
	Origin OriginFilter
	From   time.Time
	To     time.Time
}

func (f FilterState) active() bool {
	return f.Query != "" || f.Origin != OriginAll || !f.From.IsZero() || !f.To.IsZero()
}

// Filter applies the predicate chain to one bucket: order-id substring
// search, origin selector and inclusive created-at date range, ANDed.
// Range bounds are widened to whole days so a same-day range covers the
// entire day.
func Filter(orders []domain.Order, f FilterState) []domain.Order {
	if !f.active() {
		return orders
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	from, to := f.From, f.To
	if !from.IsZero() {
		from = startOfDay(from)
	}
	if !to.IsZero() {
		to = endOfDay(to)
	}

	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if query != "" && !strings.Contains(strings.ToLower(o.ID), query) {
			continue
		}
		if f.Origin != OriginAll && string(o.Origin) != string(f.Origin) {
			continue
		}
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
