package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vendora/internal/catalog/repository"
	"vendora/internal/domain"
	"vendora/internal/errors"
)

type ProductRepository interface {
	Insert(ctx context.Context, p domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, params repository.ListProductsParams) ([]domain.Product, int, error)
	Update(ctx context.Context, p domain.Product) error
	SoftDelete(ctx context.Context, id string) error
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	SalePrice   *float64
	Quantity    int
	ShopID      string
	CategoryID  *string
	BrandID     *string
	TagIDs      []string
	IsActive    bool
}

type ListProductsInput struct {
	ShopID *string
	Search string
	Page   int
	Size   int
}

type ProductsService struct {
	repo ProductRepository
}

func NewProductsService(repo ProductRepository) *ProductsService {
	return &ProductsService{repo: repo}
}

func (s *ProductsService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		Quantity:    input.Quantity,
		ShopID:      input.ShopID,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		TagIDs:      input.TagIDs,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.TagIDs == nil {
		p.TagIDs = []string{}
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductsService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductsService) List(ctx context.Context, input ListProductsInput) ([]domain.Product, int, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Size < 1 {
		input.Size = 15
	}
	return s.repo.List(ctx, repository.ListProductsParams{
		ShopID: input.ShopID,
		Search: input.Search,
		Limit:  input.Size,
		Offset: (input.Page - 1) * input.Size,
	})
}

func (s *ProductsService) Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.SalePrice = input.SalePrice
	existing.Quantity = input.Quantity
	existing.CategoryID = input.CategoryID
	existing.BrandID = input.BrandID
	existing.TagIDs = input.TagIDs
	existing.IsActive = input.IsActive
	existing.UpdatedAt = time.Now()
	if existing.TagIDs == nil {
		existing.TagIDs = []string{}
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func validateProduct(input ProductInput) error {
	if input.Name == "" {
		return errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	if input.ShopID == "" {
		return errors.NewValidationError("shopId is required", errors.ValidationDetail{
			Field: "shopId", Message: "shopId must not be empty",
		})
	}
	if input.Price <= 0 {
		return errors.NewValidationError("price must be positive", errors.ValidationDetail{
			Field: "price", Message: "price must be greater than zero",
		})
	}
	if input.SalePrice != nil {
		if *input.SalePrice <= 0 {
			return errors.NewValidationError("sale price must be positive", errors.ValidationDetail{
				Field: "salePrice", Message: "salePrice must be greater than zero",
			})
		}
		if *input.SalePrice > input.Price {
			return errors.NewValidationError("sale price must not exceed price", errors.ValidationDetail{
				Field: "salePrice", Message: "salePrice must be less than or equal to price",
			})
		}
	}
	if input.Quantity < 0 {
		return errors.NewValidationError("quantity must not be negative", errors.ValidationDetail{
			Field: "quantity", Message: "quantity must be zero or greater",
		})
	}
	return nil
}
