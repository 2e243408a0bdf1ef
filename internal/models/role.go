package models

// Role is the authorization level stored on a user profile.
type Role string

const (
	// RoleClient is a regular shopper.
	RoleClient Role = "client"
	// RoleAdmin manages the catalog, ads and stats.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid stored value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}
