// Package entity contains the core business objects of the project.
package entity

// AccountStatus represents the verification lifecycle state of an Account.
type AccountStatus string

const (
	// StatusPending indicates the account's email has not been verified yet.
	StatusPending AccountStatus = "PENDING"
	// StatusActive indicates a fully usable account.
	StatusActive AccountStatus = "ACTIVE"
	// StatusSuspended indicates an account disabled by an administrator.
	StatusSuspended AccountStatus = "SUSPENDED"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}
