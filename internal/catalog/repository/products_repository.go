package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

type ListProductsParams struct {
	ShopID *string
	Search string
	Limit  int
	Offset int
}

const productColumns = `id, name, description, price, salePrice, quantity, shopId,
	       categoryId, brandId, tagIds, isActive, isDeleted, createdAt, updatedAt`

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) error {
	tags, err := json.Marshal(p.TagIDs)
	if err != nil {
		return fmt.Errorf("encoding tag ids: %w", err)
	}

	query := `
		INSERT INTO Products (id, name, description, price, salePrice, quantity,
		                      shopId, categoryId, brandId, tagIds, isActive, isDeleted,
		                      createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.Quantity,
		p.ShopID, p.CategoryID, p.BrandID, tags, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM Products
		WHERE id = ? AND isDeleted = 0`, productColumns)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}
	return p, nil
}

func (r *MySQLProductRepository) List(ctx context.Context, params ListProductsParams) ([]domain.Product, int, error) {
	where := "WHERE isDeleted = 0"
	args := []interface{}{}
	if params.ShopID != nil {
		where += " AND shopId = ?"
		args = append(args, *params.ShopID)
	}
	if params.Search != "" {
		where += " AND name LIKE ?"
		args = append(args, "%"+params.Search+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM Products " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Products
		%s
		ORDER BY createdAt DESC
		LIMIT ? OFFSET ?`, productColumns, where)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, total, nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	tags, err := json.Marshal(p.TagIDs)
	if err != nil {
		return fmt.Errorf("encoding tag ids: %w", err)
	}

	query := `
		UPDATE Products
		SET name = ?, description = ?, price = ?, salePrice = ?, quantity = ?,
		    categoryId = ?, brandId = ?, tagIds = ?, isActive = ?, updatedAt = ?
		WHERE id = ? AND isDeleted = 0
	`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.SalePrice, p.Quantity,
		p.CategoryID, p.BrandID, tags, p.IsActive, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return requireRow(result, fmt.Sprintf("product %s not found", p.ID))
}

func (r *MySQLProductRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE Products SET isDeleted = 1 WHERE id = ? AND isDeleted = 0", id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return requireRow(result, fmt.Sprintf("product %s not found", id))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var tags []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice, &p.Quantity,
		&p.ShopID, &p.CategoryID, &p.BrandID, &tags, &p.IsActive, &p.IsDeleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.TagIDs); err != nil {
			return nil, fmt.Errorf("decoding tag ids: %w", err)
		}
	}
	return &p, nil
}

func requireRow(result sql.Result, notFoundMsg string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(notFoundMsg)
	}
	return nil
}
