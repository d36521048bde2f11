package models

// Role constants for user accounts.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// ValidRoles lists the accepted account roles.
var ValidRoles = map[string]struct{}{
	RoleCustomer: {},
	RoleStaff:    {},
	RoleAdmin:    {},
}
