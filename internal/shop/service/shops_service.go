package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type ShopRepository interface {
	Insert(ctx context.Context, s domain.Shop) error
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
	List(ctx context.Context, ownerID *string) ([]domain.Shop, error)
	Update(ctx context.Context, s domain.Shop) error
}

type ShopInput struct {
	Name     string
	OwnerID  string
	IsActive bool
}

type ShopsService struct {
	repo ShopRepository
}

func NewShopsService(repo ShopRepository) *ShopsService {
	return &ShopsService{repo: repo}
}

func (s *ShopsService) Create(ctx context.Context, input ShopInput) (*domain.Shop, error) {
	if input.Name == "" {
		return nil, errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	if input.OwnerID == "" {
		return nil, errors.NewValidationError("ownerId is required", errors.ValidationDetail{
			Field: "ownerId", Message: "ownerId must not be empty",
		})
	}

	now := time.Now()
	shop := domain.Shop{
		ID:        uuid.NewString(),
		Name:      input.Name,
		OwnerID:   input.OwnerID,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

func (s *ShopsService) Get(ctx context.Context, id string) (*domain.Shop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShopsService) List(ctx context.Context, ownerID *string) ([]domain.Shop, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *ShopsService) Update(ctx context.Context, id string, input ShopInput) (*domain.Shop, error) {
	if input.Name == "" {
		return nil, errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.IsActive = input.IsActive
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}
