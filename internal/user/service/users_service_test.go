package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type mockUserRepository struct {
	insertFunc   func(ctx context.Context, u domain.User) error
	findByIDFunc func(ctx context.Context, id string) (*domain.User, error)
	listFunc     func(ctx context.Context, role *domain.Role) ([]domain.User, error)
	updateFunc   func(ctx context.Context, u domain.User) error
}

func (m *mockUserRepository) Insert(ctx context.Context, u domain.User) error {
	return m.insertFunc(ctx, u)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockUserRepository) List(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	return m.listFunc(ctx, role)
}

func (m *mockUserRepository) Update(ctx context.Context, u domain.User) error {
	return m.updateFunc(ctx, u)
}

func TestUsersService_Create(t *testing.T) {
	var inserted domain.User
	repo := &mockUserRepository{
		insertFunc: func(_ context.Context, u domain.User) error {
			inserted = u
			return nil
		},
	}
	svc := NewUsersService(repo)

	u, err := svc.Create(context.Background(), UserInput{
		Name:     "Ana Ruiz",
		Email:    "Ana.Ruiz@Example.com",
		Role:     "vendor",
		IsActive: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ana.ruiz@example.com", u.Email)
	assert.Equal(t, domain.RoleVendor, u.Role)
	assert.Equal(t, u.ID, inserted.ID)
}

func TestUsersService_Create_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input UserInput
		field string
	}{
		{
			name:  "missing name",
			input: UserInput{Email: "a@b.com", Role: "admin"},
			field: "name",
		},
		{
			name:  "missing email",
			input: UserInput{Name: "Ana", Role: "admin"},
			field: "email",
		},
		{
			name:  "email without at sign",
			input: UserInput{Name: "Ana", Email: "not-an-email", Role: "admin"},
			field: "email",
		},
		{
			name:  "unknown role",
			input: UserInput{Name: "Ana", Email: "a@b.com", Role: "superuser"},
			field: "role",
		},
	}

	svc := NewUsersService(&mockUserRepository{})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)

			require.Error(t, err)
			ve, ok := errors.IsValidationError(err)
			require.True(t, ok)
			require.Len(t, ve.Details, 1)
			assert.Equal(t, tc.field, ve.Details[0].Field)
		})
	}
}

func TestUsersService_Create_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		insertFunc: func(_ context.Context, _ domain.User) error {
			return errors.NewConflictError("email already registered")
		},
	}
	svc := NewUsersService(repo)

	_, err := svc.Create(context.Background(), UserInput{
		Name: "Ana", Email: "a@b.com", Role: "customer",
	})

	require.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestUsersService_List_RoleFilter(t *testing.T) {
	var got *domain.Role
	repo := &mockUserRepository{
		listFunc: func(_ context.Context, role *domain.Role) ([]domain.User, error) {
			got = role
			return nil, nil
		},
	}
	svc := NewUsersService(repo)

	_, err := svc.List(context.Background(), "sales-representative")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoleSalesRep, *got)

	_, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUsersService_List_UnknownRole(t *testing.T) {
	svc := NewUsersService(&mockUserRepository{})

	_, err := svc.List(context.Background(), "owner")

	require.Error(t, err)
	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
}
