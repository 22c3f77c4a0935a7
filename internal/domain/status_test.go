package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"processing", StatusProcessing},
		{"at-local-facility", StatusAtLocalFacility},
		{"delivered", StatusDelivered},
		{"cancelled", StatusCancelled},
		{"paid", StatusPaid},
		{"nonexistent-status", StatusPending},
		{"", StatusPending},
		{"PENDING", StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseStatus(tc.input))
		})
	}
}

func TestViewStatuses(t *testing.T) {
	assert.Len(t, ViewAdmin.Statuses(), 6)
	assert.Len(t, ViewVendor.Statuses(), 5)

	assert.True(t, ViewAdmin.Contains(StatusPaid))
	assert.False(t, ViewVendor.Contains(StatusPaid))
	assert.True(t, ViewVendor.Contains(StatusPending))
}

func TestParseView(t *testing.T) {
	v, ok := ParseView("admin")
	assert.True(t, ok)
	assert.Equal(t, ViewAdmin, v)

	v, ok = ParseView("vendor")
	assert.True(t, ok)
	assert.Equal(t, ViewVendor, v)

	_, ok = ParseView("warehouse")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "vendor", "sales-representative", "customer"} {
		_, ok := ParseRole(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseRole("superuser")
	assert.False(t, ok)
}

func TestParseWithdrawalStatus(t *testing.T) {
	st, ok := ParseWithdrawalStatus("on-hold")
	assert.True(t, ok)
	assert.Equal(t, WithdrawalOnHold, st)

	_, ok = ParseWithdrawalStatus("escalated")
	assert.False(t, ok)
}
