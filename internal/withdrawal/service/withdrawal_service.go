package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendora/internal/domain"
	"vendora/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type WithdrawalRepository interface {
	Insert(ctx context.Context, w domain.Withdrawal) error
	FindByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Withdrawal, error)
	List(ctx context.Context, shopID *string) ([]domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status domain.WithdrawalStatus, note *string) error
}

type ShopRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Shop, error)
	Debit(ctx context.Context, tx *sql.Tx, id string, amount float64) error
}

// WithdrawalService owns the vendor payout flow: a vendor requests an
// amount against the shop balance, an admin settles the request.
type WithdrawalService struct {
	db        TransactionManager
	repo      WithdrawalRepository
	shops     ShopRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewWithdrawalService(
	db TransactionManager,
	repo WithdrawalRepository,
	shops ShopRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *WithdrawalService {
	return &WithdrawalService{
		db:        db,
		repo:      repo,
		shops:     shops,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

type RequestInput struct {
	ShopID string
	Amount float64
	Note   *string
}

func (s *WithdrawalService) Request(ctx context.Context, input RequestInput) (*domain.Withdrawal, error) {
	if input.ShopID == "" {
		return nil, errors.NewValidationError("shopId is required", errors.ValidationDetail{
			Field: "shopId", Message: "shopId must not be empty",
		})
	}
	if input.Amount <= 0 {
		return nil, errors.NewValidationError("amount must be positive", errors.ValidationDetail{
			Field: "amount", Message: "amount must be greater than zero",
		})
	}

	shop, err := s.shops.FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if !shop.CanWithdraw(input.Amount) {
		return nil, errors.NewValidationError("amount exceeds shop balance", errors.ValidationDetail{
			Field: "amount", Message: fmt.Sprintf("shop balance is %.2f", shop.Balance),
		})
	}

	now := time.Now()
	w := domain.Withdrawal{
		ID:        uuid.NewString(),
		ShopID:    input.ShopID,
		Amount:    input.Amount,
		Status:    domain.WithdrawalPending,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("withdrawal requested",
		zap.String("withdrawalId", w.ID),
		zap.String("shopId", w.ShopID),
		zap.Float64("amount", w.Amount),
	)
	return &w, nil
}

func (s *WithdrawalService) Get(ctx context.Context, id string) (*domain.Withdrawal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WithdrawalService) List(ctx context.Context, shopID *string) ([]domain.Withdrawal, error) {
	return s.repo.List(ctx, shopID)
}

// Settle moves a withdrawal to its next status. A same-to-same change is
// a no-op; settled withdrawals refuse further changes. Approval debits
// the shop balance in the same transaction, with the shop row locked so
// the balance check holds through the debit.
func (s *WithdrawalService) Settle(ctx context.Context, id string, target domain.WithdrawalStatus, note *string) (*domain.Withdrawal, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op once the transaction commits.
	defer tx.Rollback()

	w, err := s.repo.FindByIDForUpdate(txCtx, tx, id)
	if err != nil {
		return nil, err
	}

	if w.Status == target {
		return w, nil
	}
	if w.Settled() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("withdrawal %s is already %s", id, w.Status),
		)
	}

	if target == domain.WithdrawalApproved {
		shop, err := s.shops.FindByIDForUpdate(txCtx, tx, w.ShopID)
		if err != nil {
			return nil, err
		}
		if !shop.CanWithdraw(w.Amount) {
			return nil, errors.NewConflictError(
				fmt.Sprintf("shop balance %.2f no longer covers withdrawal of %.2f", shop.Balance, w.Amount),
			)
		}
		if err := s.shops.Debit(txCtx, tx, w.ShopID, w.Amount); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateStatus(txCtx, tx, id, target, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("withdrawalId", id), zap.Error(err))
		return nil, err
	}

	w.Status = target
	if note != nil {
		w.Note = note
	}
	w.UpdatedAt = time.Now()

	s.logger.Info("withdrawal settled",
		zap.String("withdrawalId", id),
		zap.String("status", string(target)),
	)
	return w, nil
}
