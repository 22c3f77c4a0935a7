package board

import "vendora/internal/domain"

// DefaultPageSize matches the admin order board.
const DefaultPageSize = 10

// Page slices a filtered list for a 1-based page number. Out-of-range
// pages yield an empty slice, never an error.
func Page(orders []domain.Order, page, size int) []domain.Order {
	if page < 1 || size < 1 {
		return []domain.Order{}
	}
	start := (page - 1) * size
	if start >= len(orders) {
		return []domain.Order{}
	}
	end := start + size
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

// PageCount returns how many pages the list spans; an empty list has 0.
func PageCount(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}
