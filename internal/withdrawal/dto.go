package withdrawal

import (
	"time"

	"vendora/internal/domain"
)

type WithdrawalDTO struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWithdrawalDTO(w domain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:        w.ID,
		ShopID:    w.ShopID,
		Amount:    w.Amount,
		Status:    string(w.Status),
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWithdrawalDTOs(withdrawals []domain.Withdrawal) []WithdrawalDTO {
	dtos := make([]WithdrawalDTO, 0, len(withdrawals))
	for _, w := range withdrawals {
		dtos = append(dtos, toWithdrawalDTO(w))
	}
	return dtos
}
