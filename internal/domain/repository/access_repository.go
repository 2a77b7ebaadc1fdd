package repository

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/domain/entity"
)

// AccessRepository defines data access operations for the access-control
// tables (roles, accesses and their grants).
type AccessRepository interface {
	// ListRolePermissions returns every grant of the role, joined with the
	// access name. Both ALLOWED and DENIED rows are returned.
	ListRolePermissions(ctx context.Context, roleID uuid.UUID) (entity.AccessRolePermissions, error)

	// CountPermissions counts grants matching the access name, role name and
	// permission effect. Used as an existence check by the permission guard.
	CountPermissions(ctx context.Context, accessName, roleName string, permission entity.Permission) (int64, error)
}
