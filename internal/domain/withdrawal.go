package domain

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalOnHold   WithdrawalStatus = "on-hold"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

func ParseWithdrawalStatus(s string) (WithdrawalStatus, bool) {
	switch WithdrawalStatus(s) {
	case WithdrawalPending, WithdrawalApproved, WithdrawalOnHold, WithdrawalRejected:
		return WithdrawalStatus(s), true
	}
	return "", false
}

type Withdrawal struct {
	ID        string
	ShopID    string
	Amount    float64
	Status    WithdrawalStatus
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settled withdrawals cannot change status again.
func (w Withdrawal) Settled() bool {
	return w.Status == WithdrawalApproved || w.Status == WithdrawalRejected
}
