package repository

import (
	"context"
	"database/sql"
	"fmt"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLShopRepository struct {
	db *sql.DB
}

func NewMySQLShopRepository(db *sql.DB) *MySQLShopRepository {
	return &MySQLShopRepository{db: db}
}

const shopColumns = `id, name, ownerId, isActive, totalEarnings, totalWithdrawn, balance,
	       createdAt, updatedAt`

func (r *MySQLShopRepository) Insert(ctx context.Context, s domain.Shop) error {
	query := `
		INSERT INTO Shops (id, name, ownerId, isActive, totalEarnings, totalWithdrawn,
		                   balance, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.OwnerID, s.IsActive, s.TotalEarnings, s.TotalWithdrawn,
		s.Balance, s.CreatedAt, s.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting shop: %w", err)
	}
	return nil
}

func (r *MySQLShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	query := fmt.Sprintf("SELECT %s FROM Shops WHERE id = ?", shopColumns)

	var s domain.Shop
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.OwnerID, &s.IsActive, &s.TotalEarnings, &s.TotalWithdrawn,
		&s.Balance, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("shop %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying shop by id: %w", err)
	}
	return &s, nil
}

// FindByIDForUpdate locks the shop row for the duration of the
// transaction, so a withdrawal approval reads a balance nobody else is
// debiting at the same time.
func (r *MySQLShopRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Shop, error) {
	query := fmt.Sprintf("SELECT %s FROM Shops WHERE id = ? FOR UPDATE", shopColumns)

	var s domain.Shop
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.OwnerID, &s.IsActive, &s.TotalEarnings, &s.TotalWithdrawn,
		&s.Balance, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("shop %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying shop for update: %w", err)
	}
	return &s, nil
}

// Debit moves an approved withdrawal amount out of the shop balance.
func (r *MySQLShopRepository) Debit(ctx context.Context, tx *sql.Tx, id string, amount float64) error {
	query := `
		UPDATE Shops
		SET balance = balance - ?, totalWithdrawn = totalWithdrawn + ?
		WHERE id = ?
	`
	result, err := tx.ExecContext(ctx, query, amount, amount, id)
	if err != nil {
		return fmt.Errorf("debiting shop balance: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("shop %s not found", id))
	}
	return nil
}

func (r *MySQLShopRepository) List(ctx context.Context, ownerID *string) ([]domain.Shop, error) {
	query := fmt.Sprintf("SELECT %s FROM Shops", shopColumns)
	args := []interface{}{}
	if ownerID != nil {
		query += " WHERE ownerId = ?"
		args = append(args, *ownerID)
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var s domain.Shop
		if err := rows.Scan(
			&s.ID, &s.Name, &s.OwnerID, &s.IsActive, &s.TotalEarnings, &s.TotalWithdrawn,
			&s.Balance, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning shop row: %w", err)
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shop rows: %w", err)
	}
	return shops, nil
}

func (r *MySQLShopRepository) Update(ctx context.Context, s domain.Shop) error {
	query := `
		UPDATE Shops
		SET name = ?, isActive = ?, updatedAt = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, s.Name, s.IsActive, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("updating shop: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("shop %s not found", s.ID))
	}
	return nil
}
