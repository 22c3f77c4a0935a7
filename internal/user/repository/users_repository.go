package repository

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userColumns = `id, name, email, role, isActive, createdAt, updatedAt`

func (r *MySQLUserRepository) Insert(ctx context.Context, u domain.User) error {
	query := `
		INSERT INTO Users (id, name, email, role, isActive, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt,
	); err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("email %q is already registered", u.Email))
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *MySQLUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM Users WHERE id = ?", userColumns)

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}
	return &u, nil
}

func (r *MySQLUserRepository) List(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM Users", userColumns)
	args := []interface{}{}
	if role != nil {
		query += " WHERE role = ?"
		args = append(args, *role)
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}
	return users, nil
}

func (r *MySQLUserRepository) Update(ctx context.Context, u domain.User) error {
	query := `
		UPDATE Users
		SET name = ?, email = ?, role = ?, isActive = ?, updatedAt = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Role, u.IsActive, u.UpdatedAt, u.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError(fmt.Sprintf("email %q is already registered", u.Email))
		}
		return fmt.Errorf("updating user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("user %s not found", u.ID))
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
