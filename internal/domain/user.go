package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleSalesRep Role = "sales-representative"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleVendor, RoleSalesRep, RoleCustomer:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
