package domain

// Status is the closed set of order states the remote order service reports.
type Status string

const (
	StatusPending         Status = "pending"
	StatusProcessing      Status = "processing"
	StatusAtLocalFacility Status = "at-local-facility"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
	StatusPaid            Status = "paid"
)

// DefaultStatus is where unrecognized or missing status values land.
const DefaultStatus = StatusPending

// View selects which status columns a board exposes.
type View string

const (
	ViewAdmin  View = "admin"
	ViewVendor View = "vendor"
)

var adminStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusAtLocalFacility,
	StatusDelivered,
	StatusCancelled,
	StatusPaid,
}

// Vendors never see payment states; those transitions are admin-only.
var vendorStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusAtLocalFacility,
	StatusDelivered,
	StatusCancelled,
}

// Statuses returns the view's status set in display order.
func (v View) Statuses() []Status {
	if v == ViewVendor {
		return vendorStatuses
	}
	return adminStatuses
}

func (v View) Contains(s Status) bool {
	for _, st := range v.Statuses() {
		if st == s {
			return true
		}
	}
	return false
}

// ParseView maps a path segment to a view, defaulting to admin.
func ParseView(s string) (View, bool) {
	switch s {
	case string(ViewAdmin):
		return ViewAdmin, true
	case string(ViewVendor):
		return ViewVendor, true
	}
	return ViewAdmin, false
}

// ParseStatus coerces an incoming status string to a known value.
// Unknown or empty strings fall back to DefaultStatus rather than failing,
// so a record from the order service can never be unbucketable.
func ParseStatus(s string) Status {
	for _, st := range adminStatuses {
		if string(st) == s {
			return st
		}
	}
	return DefaultStatus
}
