package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLAttributeRepository struct {
	db *sql.DB
}

func NewMySQLAttributeRepository(db *sql.DB) *MySQLAttributeRepository {
	return &MySQLAttributeRepository{db: db}
}

func (r *MySQLAttributeRepository) Insert(ctx context.Context, a domain.Attribute) error {
	values, err := json.Marshal(a.Values)
	if err != nil {
		return fmt.Errorf("encoding attribute values: %w", err)
	}

	query := `
		INSERT INTO Attributes (id, name, attrValues, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Name, values, a.CreatedAt, a.UpdatedAt); err != nil {
		return fmt.Errorf("inserting attribute: %w", err)
	}
	return nil
}

func (r *MySQLAttributeRepository) FindByID(ctx context.Context, id string) (*domain.Attribute, error) {
	query := `
		SELECT id, name, attrValues, createdAt, updatedAt
		FROM Attributes
		WHERE id = ?
	`
	var a domain.Attribute
	var values []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &values, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("attribute %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying attribute by id: %w", err)
	}
	if err := json.Unmarshal(values, &a.Values); err != nil {
		return nil, fmt.Errorf("decoding attribute values: %w", err)
	}
	return &a, nil
}

func (r *MySQLAttributeRepository) List(ctx context.Context) ([]domain.Attribute, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, attrValues, createdAt, updatedAt FROM Attributes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying attributes: %w", err)
	}
	defer rows.Close()

	var attributes []domain.Attribute
	for rows.Next() {
		var a domain.Attribute
		var values []byte
		if err := rows.Scan(&a.ID, &a.Name, &values, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning attribute row: %w", err)
		}
		if err := json.Unmarshal(values, &a.Values); err != nil {
			return nil, fmt.Errorf("decoding attribute values: %w", err)
		}
		attributes = append(attributes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attribute rows: %w", err)
	}
	return attributes, nil
}

func (r *MySQLAttributeRepository) Update(ctx context.Context, a domain.Attribute) error {
	values, err := json.Marshal(a.Values)
	if err != nil {
		return fmt.Errorf("encoding attribute values: %w", err)
	}

	query := `
		UPDATE Attributes
		SET name = ?, attrValues = ?, updatedAt = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, a.Name, values, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("updating attribute: %w", err)
	}
	return requireRow(result, fmt.Sprintf("attribute %s not found", a.ID))
}

func (r *MySQLAttributeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM Attributes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting attribute: %w", err)
	}
	return requireRow(result, fmt.Sprintf("attribute %s not found", id))
}
