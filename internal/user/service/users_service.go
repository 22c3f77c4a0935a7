package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type UserRepository interface {
	Insert(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]domain.User, error)
	Update(ctx context.Context, u domain.User) error
}

type UserInput struct {
	Name     string
	Email    string
	Role     string
	IsActive bool
}

type UsersService struct {
	repo UserRepository
}

func NewUsersService(repo UserRepository) *UsersService {
	return &UsersService{repo: repo}
}

func (s *UsersService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	role, err := validateUser(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     strings.ToLower(input.Email),
		Role:      role,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsersService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UsersService) List(ctx context.Context, roleFilter string) ([]domain.User, error) {
	var role *domain.Role
	if roleFilter != "" {
		parsed, ok := domain.ParseRole(roleFilter)
		if !ok {
			return nil, errors.NewValidationError("unknown role", errors.ValidationDetail{
				Field: "role", Message: "role must be admin, vendor, sales-representative or customer",
			})
		}
		role = &parsed
	}
	return s.repo.List(ctx, role)
}

func (s *UsersService) Update(ctx context.Context, id string, input UserInput) (*domain.User, error) {
	role, err := validateUser(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.Email = strings.ToLower(input.Email)
	existing.Role = role
	existing.IsActive = input.IsActive
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func validateUser(input UserInput) (domain.Role, error) {
	if input.Name == "" {
		return "", errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return "", errors.NewValidationError("a valid email is required", errors.ValidationDetail{
			Field: "email", Message: "email must contain @",
		})
	}
	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return "", errors.NewValidationError("unknown role", errors.ValidationDetail{
			Field: "role", Message: "role must be admin, vendor, sales-representative or customer",
		})
	}
	return role, nil
}
