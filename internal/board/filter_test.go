package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain"
)

func day(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestFilter_EmptyStateMatchesEverything(t *testing.T) {
	orders := makeOrders(domain.StatusPending, domain.StatusPending)

	assert.Equal(t, orders, Filter(orders, FilterState{}))
}

func TestFilter_QueryMatchesOrderID(t *testing.T) {
	orders := []domain.Order{
		{ID: "abc123"},
		{ID: "xyz789"},
	}

	got := Filter(orders, FilterState{Query: "abc123"})
	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].ID)

	// Substring and case-insensitive.
	got = Filter(orders, FilterState{Query: "BC1"})
	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].ID)

	assert.Empty(t, Filter(orders, FilterState{Query: "nope"}))
}

func TestFilter_Origin(t *testing.T) {
	orders := []domain.Order{
		{ID: "a", Origin: domain.OriginSalesRep},
		{ID: "b", Origin: domain.OriginCustomer},
		{ID: "c", Origin: domain.OriginSalesRep},
	}

	got := Filter(orders, FilterState{Origin: OriginSalesRep})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	got = Filter(orders, FilterState{Origin: OriginCustomer})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilter_SameDayRangeIsInclusive(t *testing.T) {
	orders := []domain.Order{
		{ID: "late", CreatedAt: day(2024, time.January, 1, 23, 59)},
		{ID: "early", CreatedAt: day(2024, time.January, 1, 0, 0)},
		{ID: "next-day", CreatedAt: day(2024, time.January, 2, 0, 1)},
	}

	bound := day(2024, time.January, 1, 12, 0)
	got := Filter(orders, FilterState{From: bound, To: bound})

	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
	assert.Equal(t, "early", got[1].ID)
}

func TestFilter_OpenEndedRange(t *testing.T) {
	orders := []domain.Order{
		{ID: "old", CreatedAt: day(2023, time.June, 1, 12, 0)},
		{ID: "new", CreatedAt: day(2024, time.June, 1, 12, 0)},
	}

	got := Filter(orders, FilterState{From: day(2024, time.January, 1, 0, 0)})
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	got = Filter(orders, FilterState{To: day(2023, time.December, 31, 0, 0)})
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].ID)
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	orders := []domain.Order{
		{ID: "abc1", Origin: domain.OriginSalesRep, CreatedAt: day(2024, time.March, 5, 9, 0)},
		{ID: "abc2", Origin: domain.OriginCustomer, CreatedAt: day(2024, time.March, 5, 9, 0)},
		{ID: "abc3", Origin: domain.OriginSalesRep, CreatedAt: day(2024, time.April, 5, 9, 0)},
	}

	got := Filter(orders, FilterState{
		Query:  "abc",
		Origin: OriginSalesRep,
		From:   day(2024, time.March, 1, 0, 0),
		To:     day(2024, time.March, 31, 0, 0),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "abc1", got[0].ID)
}

func TestFilter_Monotone(t *testing.T) {
	orders := []domain.Order{
		{ID: "abc1", Origin: domain.OriginSalesRep, CreatedAt: day(2024, time.March, 5, 9, 0)},
		{ID: "abc2", Origin: domain.OriginCustomer, CreatedAt: day(2024, time.March, 6, 9, 0)},
		{ID: "xyz3", Origin: domain.OriginSalesRep, CreatedAt: day(2024, time.March, 7, 9, 0)},
	}

	inList := func(list []domain.Order, id string) bool {
		for _, o := range list {
			if o.ID == id {
				return true
			}
		}
		return false
	}

	base := Filter(orders, FilterState{Query: "abc"})
	narrower := Filter(orders, FilterState{Query: "abc", Origin: OriginSalesRep})

	assert.LessOrEqual(t, len(narrower), len(base))
	for _, o := range narrower {
		assert.True(t, inList(base, o.ID), "narrower result must be a subset")
	}
	for _, o := range base {
		assert.True(t, inList(orders, o.ID), "filtered result must be a subset of the input")
	}
}
