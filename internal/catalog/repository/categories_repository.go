package repository

import (
	"context"
	"database/sql"
	"fmt"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLCategoryRepository struct {
	db *sql.DB
}

func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{db: db}
}

func (r *MySQLCategoryRepository) Insert(ctx context.Context, c domain.Category) error {
	query := `
		INSERT INTO Categories (id, name, slug, parentId, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Slug, c.ParentID, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("category slug %q already exists", c.Slug))
		}
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *MySQLCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, parentId, createdAt, updatedAt
		FROM Categories
		WHERE id = ?
	`
	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("category %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying category by id: %w", err)
	}
	return &c, nil
}

func (r *MySQLCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, parentId, createdAt, updatedAt
		FROM Categories
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *MySQLCategoryRepository) Update(ctx context.Context, c domain.Category) error {
	query := `
		UPDATE Categories
		SET name = ?, slug = ?, parentId = ?, updatedAt = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Slug, c.ParentID, c.UpdatedAt, c.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("category slug %q already exists", c.Slug))
		}
		return fmt.Errorf("updating category: %w", err)
	}
	return requireRow(result, fmt.Sprintf("category %s not found", c.ID))
}

func (r *MySQLCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM Categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return requireRow(result, fmt.Sprintf("category %s not found", id))
}
