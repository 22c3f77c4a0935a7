package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vendora/internal/domain"
	apperrors "vendora/internal/errors"
	"vendora/internal/orderclient"
)

type mockOrderService struct {
	ListFunc         func(ctx context.Context) ([]orderclient.RawOrder, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error)
}

func (m *mockOrderService) List(ctx context.Context) ([]orderclient.RawOrder, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func rawOrders() []orderclient.RawOrder {
	return []orderclient.RawOrder{
		{ID: "ord-1", Status: "pending", CreatedAt: "2024-02-01T08:00:00Z"},
		{ID: "ord-2", Status: "paid", CreatedAt: "2024-02-02T08:00:00Z"},
		{ID: "ord-3", Status: "pending", CreatedAt: "2024-02-03T08:00:00Z"},
	}
}

func newTestService(t *testing.T, mock *mockOrderService) *Service {
	t.Helper()
	svc := NewService(mock, time.Minute, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func TestRefresh_BuildsBoards(t *testing.T) {
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
	}
	svc := newTestService(t, mock)

	snap, err := svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 2, snap.Counts[domain.StatusPending])
	assert.Equal(t, 1, snap.Counts[domain.StatusPaid])

	// The vendor board never carries the paid column.
	_, err = svc.View(domain.ViewVendor, domain.StatusPaid, FilterState{}, 1, 10)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestRefresh_FailureKeepsPreviousBoards(t *testing.T) {
	failing := false
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			if failing {
				return nil, apperrors.NewRemoteError("order service unreachable", nil)
			}
			return rawOrders(), nil
		},
	}
	svc := newTestService(t, mock)

	failing = true
	require.Error(t, svc.Refresh(context.Background()))

	snap, err := svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Total, "stale data beats no data")
}

func TestView_OutOfRangePageResetsToFirst(t *testing.T) {
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
	}
	svc := newTestService(t, mock)

	snap, err := svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Page)
	assert.Len(t, snap.Orders, 2)
}

func TestChangeStatus_MovesToHeadOfTarget(t *testing.T) {
	var calledWith domain.Status
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
			calledWith = status
			return &orderclient.RawOrder{ID: id, Status: string(status), CreatedAt: "2024-02-01T08:00:00Z"}, nil
		},
	}
	svc := newTestService(t, mock)

	moved, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-3", domain.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, calledWith)
	assert.Equal(t, domain.StatusProcessing, moved.Status)

	snap, err := svc.View(domain.ViewAdmin, domain.StatusProcessing, FilterState{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "ord-3", snap.Orders[0].ID)

	snap, err = svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "ord-1", snap.Orders[0].ID)

	// The vendor board moved too.
	snap, err = svc.View(domain.ViewVendor, domain.StatusProcessing, FilterState{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "ord-3", snap.Orders[0].ID)
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	remoteCalls := 0
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
			remoteCalls++
			return nil, nil
		},
	}
	svc := newTestService(t, mock)

	moved, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-1", domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", moved.ID)
	assert.Equal(t, 0, remoteCalls, "same-to-same transition must not hit the order service")

	snap, err := svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 2)
}

func TestChangeStatus_RemoteFailureLeavesBoardUntouched(t *testing.T) {
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
			return nil, apperrors.NewRemoteError("status change rejected by payments", nil)
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-1", domain.StatusCancelled)
	re, ok := apperrors.IsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, "status change rejected by payments", re.Message)

	snap, err := svc.View(domain.ViewAdmin, domain.StatusPending, FilterState{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 2, "failed mutation must not move anything")

	snap, err = svc.View(domain.ViewAdmin, domain.StatusCancelled, FilterState{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, snap.Orders)

	// The in-flight mark is released, a retry can proceed.
	mock.UpdateStatusFunc = func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
		return &orderclient.RawOrder{ID: id, Status: string(status)}, nil
	}
	_, err = svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-1", domain.StatusCancelled)
	assert.NoError(t, err)
}

func TestChangeStatus_UnknownOrder(t *testing.T) {
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-404", domain.StatusPaid)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestChangeStatus_ConcurrentMutationConflicts(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mock := &mockOrderService{
		ListFunc: func(ctx context.Context) ([]orderclient.RawOrder, error) {
			return rawOrders(), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status domain.Status) (*orderclient.RawOrder, error) {
			close(started)
			<-release
			return &orderclient.RawOrder{ID: id, Status: string(status)}, nil
		},
	}
	svc := newTestService(t, mock)

	done := make(chan error, 1)
	go func() {
		_, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-1", domain.StatusProcessing)
		done <- err
	}()

	<-started
	_, err := svc.ChangeStatus(context.Background(), domain.ViewAdmin, "ord-1", domain.StatusCancelled)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "second mutation on the same order must conflict while the first is in flight")

	close(release)
	require.NoError(t, <-done)

	snap, err := svc.View(domain.ViewAdmin, domain.StatusProcessing, FilterState{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "ord-1", snap.Orders[0].ID)
}
