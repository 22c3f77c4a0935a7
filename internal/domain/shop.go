package domain

import "time"

type Shop struct {
	ID             string
	Name           string
	OwnerID        string
	IsActive       bool
	TotalEarnings  float64
	TotalWithdrawn float64
	Balance        float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanWithdraw reports whether the shop balance covers the requested amount.
func (s Shop) CanWithdraw(amount float64) bool {
	return amount > 0 && amount <= s.Balance
}
