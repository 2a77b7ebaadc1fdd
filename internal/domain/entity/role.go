package entity

import (
	"time"

	"github.com/google/uuid"
)

// Permission is the effect of an access-role grant.
type Permission string

const (
	// PermissionAllowed grants the role the access.
	PermissionAllowed Permission = "ALLOWED"
	// PermissionDenied explicitly withholds the access from the role.
	PermissionDenied Permission = "DENIED"
)

// String returns the string representation of the Permission.
func (p Permission) String() string {
	return string(p)
}

// Role groups accounts under a named permission set.
type Role struct {
	ID          uuid.UUID
	Name        string // Unique role name, e.g. "editor".
	Permissions AccessRolePermissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Access is a named API resource that roles are granted or denied.
type Access struct {
	ID        uuid.UUID
	Name      string // Unique resource identifier, e.g. "articles".
	CreatedAt time.Time
}

// AccessRolePermission links one Role to one Access with an effect.
// At most one row exists per (role, access) pair.
type AccessRolePermission struct {
	RoleID     uuid.UUID
	AccessID   uuid.UUID
	AccessName string // Denormalized from the joined Access row.
	Permission Permission
}

// AccessRolePermissions is a set of grants resolved for one role.
type AccessRolePermissions []AccessRolePermission

// AllowedAccessNames projects the names of the accesses the role may use,
// dropping DENIED rows.
func (ps AccessRolePermissions) AllowedAccessNames() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.Permission == PermissionAllowed {
			names = append(names, p.AccessName)
		}
	}

	return names
}
