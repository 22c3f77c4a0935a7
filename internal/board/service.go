package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"vendora/internal/domain"
	apperrors "vendora/internal/errors"
	"vendora/internal/orderclient"
)

// OrderService is the slice of the remote order service the board needs.
type OrderService interface {
	List(ctx context.Context) ([]orderclient.RawOrder, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error)
}

// Service owns the in-memory boards for every view. Boards are rebuilt
// wholesale from each fetch; between fetches a successful status change
// moves the order incrementally, then the next refresh reconciles against
// the order service's authoritative state.
type Service struct {
	orders       OrderService
	refreshEvery time.Duration
	logger       *zap.Logger

	mu       sync.RWMutex
	boards   map[domain.View]*StatusBoard
	inflight map[string]struct{}
}

func NewService(orders OrderService, refreshEvery time.Duration, logger *zap.Logger) *Service {
	boards := make(map[domain.View]*StatusBoard)
	for _, view := range []domain.View{domain.ViewAdmin, domain.ViewVendor} {
		boards[view] = Group(view, nil)
	}
	return &Service{
		orders:       orders,
		refreshEvery: refreshEvery,
		logger:       logger,
		boards:       boards,
		inflight:     make(map[string]struct{}),
	}
}

// Run refreshes once immediately, then on the configured interval until
// the context ends. A failed fetch keeps the previous boards.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("initial order fetch failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn("order refresh failed", zap.Error(err))
			}
		}
	}
}

// Refresh fetches the full collection and rebuilds every view's board.
func (s *Service) Refresh(ctx context.Context) error {
	raws, err := s.orders.List(ctx)
	if err != nil {
		return fmt.Errorf("listing orders: %w", err)
	}
	orders := TransformAll(raws)

	s.mu.Lock()
	for view := range s.boards {
		s.boards[view] = Group(view, orders)
	}
	s.mu.Unlock()

	s.logger.Debug("boards rebuilt", zap.Int("orders", len(orders)))
	return nil
}

// Snapshot is one filtered, paginated bucket plus the per-bucket counts.
type Snapshot struct {
	View     domain.View
	Status   domain.Status
	Orders   []domain.Order
	Page     int
	PageSize int
	Total    int
	Pages    int
	Counts   map[domain.Status]int
}

// View returns one status column of a view's board, filtered and
// paginated. A page beyond the filtered page count resets to 1, which is
// also how a filter change lands back on the first page.
func (s *Service) View(view domain.View, status domain.Status, filter FilterState, page, size int) (*Snapshot, error) {
	if !view.Contains(status) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("status %q is not part of the %s board", status, view),
		)
	}
	if size < 1 {
		size = DefaultPageSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.boards[view]
	filtered := Filter(b.Bucket(status), filter)

	pages := PageCount(len(filtered), size)
	if page < 1 || page > pages {
		page = 1
	}

	return &Snapshot{
		View:     view,
		Status:   status,
		Orders:   Page(filtered, page, size),
		Page:     page,
		PageSize: size,
		Total:    len(filtered),
		Pages:    pages,
		Counts:   b.Counts(),
	}, nil
}

// ChangeStatus runs the two-phase optimistic move: validate locally, call
// the order service, then move the order between buckets only after the
// remote call succeeds. On failure local state is untouched and the
// remote message propagates to the caller.
//
// A same-to-same transition is a guarded no-op: no remote call is issued.
// While a change for an order is in flight, a second change on the same
// id is rejected with a conflict instead of racing it.
func (s *Service) ChangeStatus(ctx context.Context, view domain.View, id string, to domain.Status) (domain.Order, error) {
	if !view.Contains(to) {
		return domain.Order{}, apperrors.NewValidationError(
			fmt.Sprintf("status %q is not part of the %s board", to, view),
		)
	}

	s.mu.Lock()
	order, current, found := s.boards[view].Find(id)
	if !found {
		s.mu.Unlock()
		return domain.Order{}, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if current == to {
		s.mu.Unlock()
		return order, nil
	}
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return domain.Order{}, apperrors.NewConflictError(
			fmt.Sprintf("a status change for order %s is already in flight", id),
		)
	}
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	updated, err := s.orders.UpdateStatus(ctx, id, to)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)

	if err != nil {
		s.logger.Warn("status change rejected",
			zap.String("orderId", id),
			zap.String("from", string(current)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return domain.Order{}, err
	}

	// Prefer the authoritative record; keep the local one if the response
	// came back unusable.
	moved := order
	if updated != nil && updated.ID == id {
		moved = Transform(*updated)
	}
	moved.Status = to

	for _, b := range s.boards {
		b.Move(moved, to)
	}

	s.logger.Info("order moved",
		zap.String("orderId", id),
		zap.String("from", string(current)),
		zap.String("to", string(to)),
	)
	return moved, nil
}
