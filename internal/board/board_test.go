package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain"
)

func makeOrders(statuses ...domain.Status) []domain.Order {
	orders := make([]domain.Order, 0, len(statuses))
	for i, st := range statuses {
		orders = append(orders, domain.Order{
			ID:     fmt.Sprintf("order-%d", i),
			Status: st,
		})
	}
	return orders
}

func TestGroup_PartitionInvariant(t *testing.T) {
	orders := makeOrders(
		domain.StatusPending, domain.StatusPaid, domain.StatusDelivered,
		domain.StatusPending, domain.StatusCancelled, domain.StatusProcessing,
		domain.StatusPaid,
	)

	b := Group(domain.ViewAdmin, orders)

	// Every status key is present, even when empty.
	for _, st := range domain.ViewAdmin.Statuses() {
		assert.NotNil(t, b.Bucket(st))
	}

	// Union of buckets is exactly the input, each order once.
	seen := map[string]int{}
	for _, st := range domain.ViewAdmin.Statuses() {
		for _, o := range b.Bucket(st) {
			seen[o.ID]++
			assert.Equal(t, st, o.Status)
		}
	}
	require.Len(t, seen, len(orders))
	for id, n := range seen {
		assert.Equal(t, 1, n, "order %s appears %d times", id, n)
	}
}

func TestGroup_Example(t *testing.T) {
	orders := makeOrders(domain.StatusPending, domain.StatusPaid, domain.StatusPending)

	b := Group(domain.ViewAdmin, orders)

	pending := b.Bucket(domain.StatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "order-0", pending[0].ID)
	assert.Equal(t, "order-2", pending[1].ID)

	paid := b.Bucket(domain.StatusPaid)
	require.Len(t, paid, 1)
	assert.Equal(t, "order-1", paid[0].ID)

	assert.Empty(t, b.Bucket(domain.StatusProcessing))
	assert.Empty(t, b.Bucket(domain.StatusDelivered))
	assert.Empty(t, b.Bucket(domain.StatusCancelled))
	assert.Empty(t, b.Bucket(domain.StatusAtLocalFacility))
}

func TestGroup_Idempotent(t *testing.T) {
	orders := makeOrders(
		domain.StatusPaid, domain.StatusPending, domain.StatusDelivered,
		domain.StatusPending,
	)

	first := Group(domain.ViewAdmin, orders)
	second := Group(domain.ViewAdmin, orders)

	for _, st := range domain.ViewAdmin.Statuses() {
		assert.Equal(t, first.Bucket(st), second.Bucket(st))
	}
}

func TestGroup_VendorViewDropsPaid(t *testing.T) {
	orders := makeOrders(domain.StatusPending, domain.StatusPaid)

	b := Group(domain.ViewVendor, orders)

	assert.Equal(t, 1, b.total())
	assert.Len(t, b.Bucket(domain.StatusPending), 1)
	assert.Nil(t, b.Bucket(domain.StatusPaid))
}

func TestMove_HeadOfTargetBucket(t *testing.T) {
	orders := makeOrders(
		domain.StatusPending, domain.StatusProcessing, domain.StatusProcessing,
	)
	b := Group(domain.ViewAdmin, orders)

	o, st, found := b.Find("order-0")
	require.True(t, found)
	assert.Equal(t, domain.StatusPending, st)

	b.Move(o, domain.StatusProcessing)

	assert.Empty(t, b.Bucket(domain.StatusPending))

	processing := b.Bucket(domain.StatusProcessing)
	require.Len(t, processing, 3)
	assert.Equal(t, "order-0", processing[0].ID, "moved order must be at the head")
	assert.Equal(t, domain.StatusProcessing, processing[0].Status)

	// Still exactly once across the whole board.
	count := 0
	for _, st := range domain.ViewAdmin.Statuses() {
		for _, entry := range b.Bucket(st) {
			if entry.ID == "order-0" {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestMove_TargetOutsideViewRemoves(t *testing.T) {
	orders := makeOrders(domain.StatusPending)
	b := Group(domain.ViewVendor, orders)

	o, _, found := b.Find("order-0")
	require.True(t, found)

	b.Move(o, domain.StatusPaid)

	_, _, found = b.Find("order-0")
	assert.False(t, found, "paid orders are not visible on the vendor board")
	assert.Equal(t, 0, b.total())
}

func TestMove_InsertsWhenAbsent(t *testing.T) {
	b := Group(domain.ViewVendor, nil)

	b.Move(domain.Order{ID: "order-9", Status: domain.StatusPaid}, domain.StatusProcessing)

	processing := b.Bucket(domain.StatusProcessing)
	require.Len(t, processing, 1)
	assert.Equal(t, "order-9", processing[0].ID)
}

func TestCounts(t *testing.T) {
	orders := makeOrders(domain.StatusPending, domain.StatusPending, domain.StatusPaid)
	b := Group(domain.ViewAdmin, orders)

	counts := b.Counts()
	assert.Equal(t, 2, counts[domain.StatusPending])
	assert.Equal(t, 1, counts[domain.StatusPaid])
	assert.Equal(t, 0, counts[domain.StatusDelivered])
	assert.Equal(t, 3, b.total())
}
