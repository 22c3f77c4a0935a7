package repository

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

// Tags and brands are flat name/slug terms with identical persistence;
// they live in their own tables but share the query shapes below.

type MySQLTagRepository struct {
	db *sql.DB
}

func NewMySQLTagRepository(db *sql.DB) *MySQLTagRepository {
	return &MySQLTagRepository{db: db}
}

func (r *MySQLTagRepository) Insert(ctx context.Context, t domain.Tag) error {
	return insertTerm(ctx, r.db, "Tags", t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt)
}

func (r *MySQLTagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	var t domain.Tag
	err := findTerm(ctx, r.db, "Tags", id, &t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MySQLTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, slug, createdAt, updatedAt FROM Tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag rows: %w", err)
	}
	return tags, nil
}

func (r *MySQLTagRepository) Update(ctx context.Context, t domain.Tag) error {
	return updateTerm(ctx, r.db, "Tags", t.ID, t.Name, t.Slug, t.UpdatedAt)
}

func (r *MySQLTagRepository) Delete(ctx context.Context, id string) error {
	return deleteTerm(ctx, r.db, "Tags", id)
}

type MySQLBrandRepository struct {
	db *sql.DB
}

func NewMySQLBrandRepository(db *sql.DB) *MySQLBrandRepository {
	return &MySQLBrandRepository{db: db}
}

func (r *MySQLBrandRepository) Insert(ctx context.Context, b domain.Brand) error {
	return insertTerm(ctx, r.db, "Brands", b.ID, b.Name, b.Slug, b.CreatedAt, b.UpdatedAt)
}

func (r *MySQLBrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	var b domain.Brand
	err := findTerm(ctx, r.db, "Brands", id, &b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MySQLBrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, slug, createdAt, updatedAt FROM Brands ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning brand row: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brand rows: %w", err)
	}
	return brands, nil
}

func (r *MySQLBrandRepository) Update(ctx context.Context, b domain.Brand) error {
	return updateTerm(ctx, r.db, "Brands", b.ID, b.Name, b.Slug, b.UpdatedAt)
}

func (r *MySQLBrandRepository) Delete(ctx context.Context, id string) error {
	return deleteTerm(ctx, r.db, "Brands", id)
}

func insertTerm(ctx context.Context, db *sql.DB, table, id, name, slug string, createdAt, updatedAt time.Time) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, name, slug, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?)", table)
	if _, err := db.ExecContext(ctx, query, id, name, slug, createdAt, updatedAt); err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("slug %q already exists", slug))
		}
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

func findTerm(ctx context.Context, db *sql.DB, table, id string, dest ...interface{}) error {
	query := fmt.Sprintf("SELECT id, name, slug, createdAt, updatedAt FROM %s WHERE id = ?", table)
	err := db.QueryRowContext(ctx, query, id).Scan(dest...)
	if err == sql.ErrNoRows {
		return errors.NewNotFoundError(fmt.Sprintf("%s entry %s not found", table, id))
	}
	if err != nil {
		return fmt.Errorf("querying %s by id: %w", table, err)
	}
	return nil
}

func updateTerm(ctx context.Context, db *sql.DB, table, id, name, slug string, updatedAt time.Time) error {
	query := fmt.Sprintf("UPDATE %s SET name = ?, slug = ?, updatedAt = ? WHERE id = ?", table)
	result, err := db.ExecContext(ctx, query, name, slug, updatedAt, id)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("slug %q already exists", slug))
		}
		return fmt.Errorf("updating %s: %w", table, err)
	}
	return requireRow(result, fmt.Sprintf("%s entry %s not found", table, id))
}

func deleteTerm(ctx context.Context, db *sql.DB, table, id string) error {
	result, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return requireRow(result, fmt.Sprintf("%s entry %s not found", table, id))
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
