package repository

import (
	"context"
	"database/sql"
	"fmt"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLWithdrawalRepository struct {
	db *sql.DB
}

func NewMySQLWithdrawalRepository(db *sql.DB) *MySQLWithdrawalRepository {
	return &MySQLWithdrawalRepository{db: db}
}

const withdrawalColumns = `id, shopId, amount, status, note, createdAt, updatedAt`

func (r *MySQLWithdrawalRepository) Insert(ctx context.Context, w domain.Withdrawal) error {
	query := `
		INSERT INTO Withdrawals (id, shopId, amount, status, note, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		w.ID, w.ShopID, w.Amount, w.Status, w.Note, w.CreatedAt, w.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting withdrawal: %w", err)
	}
	return nil
}

func (r *MySQLWithdrawalRepository) FindByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	query := fmt.Sprintf("SELECT %s FROM Withdrawals WHERE id = ?", withdrawalColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

// FindByIDForUpdate locks the withdrawal row inside the settle transaction.
func (r *MySQLWithdrawalRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Withdrawal, error) {
	query := fmt.Sprintf("SELECT %s FROM Withdrawals WHERE id = ? FOR UPDATE", withdrawalColumns)
	return r.scanOne(tx.QueryRowContext(ctx, query, id), id)
}

func (r *MySQLWithdrawalRepository) List(ctx context.Context, shopID *string) ([]domain.Withdrawal, error) {
	query := fmt.Sprintf("SELECT %s FROM Withdrawals", withdrawalColumns)
	args := []interface{}{}
	if shopID != nil {
		query += " WHERE shopId = ?"
		args = append(args, *shopID)
	}
	query += " ORDER BY createdAt DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.ShopID, &w.Amount, &w.Status, &w.Note, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning withdrawal row: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating withdrawal rows: %w", err)
	}
	return withdrawals, nil
}

// UpdateStatus moves the withdrawal to the target status. The note column
// only changes when a note is given; a nil note keeps the one stored at
// request time.
func (r *MySQLWithdrawalRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status domain.WithdrawalStatus, note *string) error {
	query := `UPDATE Withdrawals SET status = ?, note = COALESCE(?, note) WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, note, id)
	if err != nil {
		return fmt.Errorf("updating withdrawal status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("withdrawal %s not found", id))
	}
	return nil
}

func (r *MySQLWithdrawalRepository) scanOne(row *sql.Row, id string) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.ShopID, &w.Amount, &w.Status, &w.Note, &w.CreatedAt, &w.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("withdrawal %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying withdrawal by id: %w", err)
	}
	return &w, nil
}
