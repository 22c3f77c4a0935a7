// Package board holds the in-memory order status board: orders fetched
// from the remote order service, grouped into one bucket per status, with
// pure filter and pagination steps on top and optimistic status moves.
package board

import "vendora/internal/domain"

// StatusBoard partitions a set of orders into one bucket per status of a
// view. Every order sits in exactly one bucket; bucket order follows the
// input list, so the server's sort survives grouping.
type StatusBoard struct {
	buckets map[domain.Status][]domain.Order
}

// Group builds a board from the normalized order list. Every status of
// the view is present afterwards, possibly with an empty bucket. Orders
// whose status is outside the view are dropped from that view's board.
func Group(view domain.View, orders []domain.Order) *StatusBoard {
	b := &StatusBoard{
		buckets: make(map[domain.Status][]domain.Order, len(view.Statuses())),
	}
	for _, st := range view.Statuses() {
		b.buckets[st] = []domain.Order{}
	}
	for _, o := range orders {
		if _, ok := b.buckets[o.Status]; !ok {
			continue
		}
		b.buckets[o.Status] = append(b.buckets[o.Status], o)
	}
	return b
}

// Bucket returns the orders currently in one status column.
func (b *StatusBoard) Bucket(status domain.Status) []domain.Order {
	return b.buckets[status]
}

// Find scans all buckets for an order id.
func (b *StatusBoard) Find(id string) (domain.Order, domain.Status, bool) {
	for st, bucket := range b.buckets {
		for _, o := range bucket {
			if o.ID == id {
				return o, st, true
			}
		}
	}
	return domain.Order{}, "", false
}

// Move removes any entry with the order's id and, when the target status
// belongs to this view, prepends the order to the target bucket so it
// surfaces at the head of its new column.
func (b *StatusBoard) Move(o domain.Order, to domain.Status) {
	for st, bucket := range b.buckets {
		for i, existing := range bucket {
			if existing.ID == o.ID {
				b.buckets[st] = append(bucket[:i:i], bucket[i+1:]...)
				break
			}
		}
	}
	if _, ok := b.buckets[to]; !ok {
		return
	}
	o.Status = to
	b.buckets[to] = append([]domain.Order{o}, b.buckets[to]...)
}

// Counts reports the bucket sizes, for the board header badges.
func (b *StatusBoard) Counts() map[domain.Status]int {
	counts := make(map[domain.Status]int, len(b.buckets))
	for st, bucket := range b.buckets {
		counts[st] = len(bucket)
	}
	return counts
}

func (b *StatusBoard) total() int {
	n := 0
	for _, bucket := range b.buckets {
		n += len(bucket)
	}
	return n
}
