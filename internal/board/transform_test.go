package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain"
	"vendora/internal/orderclient"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestTransform_CompleteRecord(t *testing.T) {
	raw := orderclient.RawOrder{
		ID:        "ord-1",
		CreatedAt: "2024-01-15T10:30:00Z",
		Customer:  &orderclient.RawCustomer{FirstName: "Jane", LastName: "Doe"},
		Total:     floatPtr(149.90),
		Status:    "processing",
		Origin:    "sales-representative",
		Products: []orderclient.RawProduct{
			{ProductID: "p-1", Name: "Mug", Quantity: 2, UnitPrice: floatPtr(9.95), Total: floatPtr(19.90)},
		},
	}

	o := Transform(raw)

	assert.Equal(t, "ord-1", o.ID)
	assert.Equal(t, "Jane Doe", o.CustomerName)
	assert.Equal(t, domain.OriginSalesRep, o.Origin)
	assert.Equal(t, 149.90, o.TotalAmount)
	assert.Equal(t, domain.StatusProcessing, o.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), o.CreatedAt)
	require.Len(t, o.LineItems, 1)
	assert.Equal(t, 19.90, o.LineItems[0].Total)
}

func TestTransform_MalformedRecordDefaults(t *testing.T) {
	raw := orderclient.RawOrder{ID: "ord-2"}

	o := Transform(raw)

	assert.Equal(t, "Unknown", o.CustomerName)
	assert.Equal(t, domain.OriginCustomer, o.Origin)
	assert.Equal(t, 0.0, o.TotalAmount)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.True(t, o.CreatedAt.IsZero())
	assert.Empty(t, o.LineItems)
}

func TestTransform_UnknownStatusCoercedToPending(t *testing.T) {
	raw := orderclient.RawOrder{ID: "ord-3", Status: "nonexistent-status"}

	assert.Equal(t, domain.StatusPending, Transform(raw).Status)
}

func TestTransform_PartialCustomerName(t *testing.T) {
	cases := []struct {
		name     string
		customer *orderclient.RawCustomer
		want     string
	}{
		{"nil customer", nil, "Unknown"},
		{"first only", &orderclient.RawCustomer{FirstName: "Jane"}, "Jane"},
		{"last only", &orderclient.RawCustomer{LastName: "Doe"}, "Unknown Doe"},
		{"empty fields", &orderclient.RawCustomer{}, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := Transform(orderclient.RawOrder{ID: "x", Customer: tc.customer})
			assert.Equal(t, tc.want, o.CustomerName)
		})
	}
}

func TestTransform_LineItemTotalDerived(t *testing.T) {
	raw := orderclient.RawOrder{
		ID: "ord-4",
		Products: []orderclient.RawProduct{
			{ProductID: "p-1", Quantity: 3, UnitPrice: floatPtr(5.0)},
		},
	}

	o := Transform(raw)
	require.Len(t, o.LineItems, 1)
	assert.Equal(t, 15.0, o.LineItems[0].Total)
}

func TestTransformAll_PreservesOrder(t *testing.T) {
	raws := []orderclient.RawOrder{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	orders := TransformAll(raws)

	require.Len(t, orders, 3)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
	assert.Equal(t, "c", orders[2].ID)
}
