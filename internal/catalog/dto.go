package catalog

import (
	"time"

	"vendora/internal/domain"
)

type ProductDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	SalePrice      *float64  `json:"salePrice"`
	EffectivePrice float64   `json:"effectivePrice"`
	Quantity       int       `json:"quantity"`
	InStock        bool      `json:"inStock"`
	ShopID         string    `json:"shopId"`
	CategoryID     *string   `json:"categoryId"`
	BrandID        *string   `json:"brandId"`
	TagIDs         []string  `json:"tagIds"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		SalePrice:      p.SalePrice,
		EffectivePrice: p.EffectivePrice(),
		Quantity:       p.Quantity,
		InStock:        p.InStock(),
		ShopID:         p.ShopID,
		CategoryID:     p.CategoryID,
		BrandID:        p.BrandID,
		TagIDs:         p.TagIDs,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}

type CategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ParentID  *string   `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	return dtos
}

// TermDTO covers the flat vocabularies that only carry a name and slug.
type TermDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTagDTO(t domain.Tag) TermDTO {
	return TermDTO{ID: t.ID, Name: t.Name, Slug: t.Slug, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func toBrandDTO(b domain.Brand) TermDTO {
	return TermDTO{ID: b.ID, Name: b.Name, Slug: b.Slug, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toTagDTOs(tags []domain.Tag) []TermDTO {
	dtos := make([]TermDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, toTagDTO(t))
	}
	return dtos
}

func toBrandDTOs(brands []domain.Brand) []TermDTO {
	dtos := make([]TermDTO, 0, len(brands))
	for _, b := range brands {
		dtos = append(dtos, toBrandDTO(b))
	}
	return dtos
}

type AttributeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Values    []string  `json:"values"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAttributeDTO(a domain.Attribute) AttributeDTO {
	return AttributeDTO{
		ID:        a.ID,
		Name:      a.Name,
		Values:    a.Values,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAttributeDTOs(attributes []domain.Attribute) []AttributeDTO {
	dtos := make([]AttributeDTO, 0, len(attributes))
	for _, a := range attributes {
		dtos = append(dtos, toAttributeDTO(a))
	}
	return dtos
}
