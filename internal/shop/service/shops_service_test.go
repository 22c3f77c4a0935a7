package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type mockShopRepository struct {
	insertFunc   func(ctx context.Context, s domain.Shop) error
	findByIDFunc func(ctx context.Context, id string) (*domain.Shop, error)
	listFunc     func(ctx context.Context, ownerID *string) ([]domain.Shop, error)
	updateFunc   func(ctx context.Context, s domain.Shop) error
}

func (m *mockShopRepository) Insert(ctx context.Context, s domain.Shop) error {
	return m.insertFunc(ctx, s)
}

func (m *mockShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockShopRepository) List(ctx context.Context, ownerID *string) ([]domain.Shop, error) {
	return m.listFunc(ctx, ownerID)
}

func (m *mockShopRepository) Update(ctx context.Context, s domain.Shop) error {
	return m.updateFunc(ctx, s)
}

func TestShopsService_Create(t *testing.T) {
	var inserted domain.Shop
	repo := &mockShopRepository{
		insertFunc: func(_ context.Context, s domain.Shop) error {
			inserted = s
			return nil
		},
	}
	svc := NewShopsService(repo)

	shop, err := svc.Create(context.Background(), ShopInput{
		Name:     "Corner Store",
		OwnerID:  "user-1",
		IsActive: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, "Corner Store", shop.Name)
	assert.Zero(t, shop.Balance)
	assert.Equal(t, shop.ID, inserted.ID)
}

func TestShopsService_Create_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input ShopInput
		field string
	}{
		{
			name:  "missing name",
			input: ShopInput{OwnerID: "user-1"},
			field: "name",
		},
		{
			name:  "missing owner",
			input: ShopInput{Name: "Corner Store"},
			field: "ownerId",
		},
	}

	svc := NewShopsService(&mockShopRepository{})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)

			require.Error(t, err)
			ve, ok := errors.IsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ve.Details[0].Field)
		})
	}
}

func TestShopsService_Update_PreservesOwnerAndBalance(t *testing.T) {
	var updated domain.Shop
	repo := &mockShopRepository{
		findByIDFunc: func(_ context.Context, _ string) (*domain.Shop, error) {
			return &domain.Shop{ID: "shop-1", Name: "Old", OwnerID: "user-1", Balance: 250}, nil
		},
		updateFunc: func(_ context.Context, s domain.Shop) error {
			updated = s
			return nil
		},
	}
	svc := NewShopsService(repo)

	shop, err := svc.Update(context.Background(), "shop-1", ShopInput{Name: "New", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, "New", shop.Name)
	assert.Equal(t, "user-1", updated.OwnerID)
	assert.Equal(t, 250.0, updated.Balance)
}
