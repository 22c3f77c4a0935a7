package shop

import (
	"time"

	"vendora/internal/domain"
)

type ShopDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OwnerID        string    `json:"ownerId"`
	IsActive       bool      `json:"isActive"`
	TotalEarnings  float64   `json:"totalEarnings"`
	TotalWithdrawn float64   `json:"totalWithdrawn"`
	Balance        float64   `json:"balance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toShopDTO(s domain.Shop) ShopDTO {
	return ShopDTO{
		ID:             s.ID,
		Name:           s.Name,
		OwnerID:        s.OwnerID,
		IsActive:       s.IsActive,
		TotalEarnings:  s.TotalEarnings,
		TotalWithdrawn: s.TotalWithdrawn,
		Balance:        s.Balance,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toShopDTOs(shops []domain.Shop) []ShopDTO {
	dtos := make([]ShopDTO, 0, len(shops))
	for _, s := range shops {
		dtos = append(dtos, toShopDTO(s))
	}
	return dtos
}
