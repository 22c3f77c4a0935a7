package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type CategoryRepository interface {
	Insert(ctx context.Context, c domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c domain.Category) error
	Delete(ctx context.Context, id string) error
}

type TagRepository interface {
	Insert(ctx context.Context, t domain.Tag) error
	FindByID(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, t domain.Tag) error
	Delete(ctx context.Context, id string) error
}

type BrandRepository interface {
	Insert(ctx context.Context, b domain.Brand) error
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, b domain.Brand) error
	Delete(ctx context.Context, id string) error
}

type AttributeRepository interface {
	Insert(ctx context.Context, a domain.Attribute) error
	FindByID(ctx context.Context, id string) (*domain.Attribute, error)
	List(ctx context.Context) ([]domain.Attribute, error)
	Update(ctx context.Context, a domain.Attribute) error
	Delete(ctx context.Context, id string) error
}

// TaxonomyService covers the flat catalog vocabularies: categories, tags,
// brands and attributes.
type TaxonomyService struct {
	categories CategoryRepository
	tags       TagRepository
	brands     BrandRepository
	attributes AttributeRepository
}

func NewTaxonomyService(
	categories CategoryRepository,
	tags TagRepository,
	brands BrandRepository,
	attributes AttributeRepository,
) *TaxonomyService {
	return &TaxonomyService{
		categories: categories,
		tags:       tags,
		brands:     brands,
		attributes: attributes,
	}
}

type TermInput struct {
	Name string
	Slug string
}

type CategoryInput struct {
	TermInput
	ParentID *string
}

type AttributeInput struct {
	Name   string
	Values []string
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	name, slug, err := termFields(input.TermInput)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	name, slug, err := termFields(input.TermInput)
	if err != nil {
		return nil, err
	}

	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Slug = slug
	existing.ParentID = input.ParentID
	existing.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *TaxonomyService) CreateTag(ctx context.Context, input TermInput) (*domain.Tag, error) {
	name, slug, err := termFields(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := domain.Tag{ID: uuid.NewString(), Name: name, Slug: slug, CreatedAt: now, UpdatedAt: now}
	if err := s.tags.Insert(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaxonomyService) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.FindByID(ctx, id)
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *TaxonomyService) UpdateTag(ctx context.Context, id string, input TermInput) (*domain.Tag, error) {
	name, slug, err := termFields(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Slug = slug
	existing.UpdatedAt = time.Now()

	if err := s.tags.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, id string) error {
	return s.tags.Delete(ctx, id)
}

func (s *TaxonomyService) CreateBrand(ctx context.Context, input TermInput) (*domain.Brand, error) {
	name, slug, err := termFields(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := domain.Brand{ID: uuid.NewString(), Name: name, Slug: slug, CreatedAt: now, UpdatedAt: now}
	if err := s.brands.Insert(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *TaxonomyService) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *TaxonomyService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *TaxonomyService) UpdateBrand(ctx context.Context, id string, input TermInput) (*domain.Brand, error) {
	name, slug, err := termFields(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Slug = slug
	existing.UpdatedAt = time.Now()

	if err := s.brands.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaxonomyService) DeleteBrand(ctx context.Context, id string) error {
	return s.brands.Delete(ctx, id)
}

func (s *TaxonomyService) CreateAttribute(ctx context.Context, input AttributeInput) (*domain.Attribute, error) {
	if err := validateAttribute(input); err != nil {
		return nil, err
	}

	now := time.Now()
	a := domain.Attribute{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Values:    input.Values,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.attributes.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *TaxonomyService) GetAttribute(ctx context.Context, id string) (*domain.Attribute, error) {
	return s.attributes.FindByID(ctx, id)
}

func (s *TaxonomyService) ListAttributes(ctx context.Context) ([]domain.Attribute, error) {
	return s.attributes.List(ctx)
}

func (s *TaxonomyService) UpdateAttribute(ctx context.Context, id string, input AttributeInput) (*domain.Attribute, error) {
	if err := validateAttribute(input); err != nil {
		return nil, err
	}

	existing, err := s.attributes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.Values = input.Values
	existing.UpdatedAt = time.Now()

	if err := s.attributes.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaxonomyService) DeleteAttribute(ctx context.Context, id string) error {
	return s.attributes.Delete(ctx, id)
}

func termFields(input TermInput) (string, string, error) {
	if input.Name == "" {
		return "", "", errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}
	return input.Name, slug, nil
}

func validateAttribute(input AttributeInput) error {
	if input.Name == "" {
		return errors.NewValidationError("name is required", errors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	if len(input.Values) == 0 {
		return errors.NewValidationError("values are required", errors.ValidationDetail{
			Field: "values", Message: "an attribute needs at least one value",
		})
	}
	return nil
}

// Slugify turns a display name into a URL-safe slug.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
