package models

// Principal roles supplied by the authentication boundary.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)
