package domain

import "time"

type Product struct {
	ID          string
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
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectivePrice is what the storefront charges right now.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}

func (p Product) InStock() bool {
	return p.Quantity > 0
}

type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Tag struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Brand struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attribute is a named set of values products can vary over (size, color).
type Attribute struct {
	ID        string
	Name      string
	Values    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
