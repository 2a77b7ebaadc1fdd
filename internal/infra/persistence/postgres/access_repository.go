package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accessRepository implements the domain.AccessRepository interface using GORM.
type accessRepository struct {
	db *gorm.DB
}

// NewAccessRepository is the constructor for accessRepository.
func NewAccessRepository(db *gorm.DB) repository.AccessRepository {
	return &accessRepository{db: db}
}

// ListRolePermissions returns every grant of the role joined with the access name.
func (repo *accessRepository) ListRolePermissions(ctx context.Context, roleID uuid.UUID) (entity.AccessRolePermissions, error) {
	var rows []model.AccessRolePermissionModel
	err := repo.db.WithContext(ctx).
		Preload("Access").
		Where("role_id = ?", roleID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role permissions")
	}

	permissions := make(entity.AccessRolePermissions, 0, len(rows))
	for _, row := range rows {
		accessName := ""
		if row.Access != nil {
			accessName = row.Access.Name
		}

		permissions = append(permissions, entity.AccessRolePermission{
			RoleID:     row.RoleID,
			AccessID:   row.AccessID,
			AccessName: accessName,
			Permission: entity.Permission(row.Permission),
		})
	}

	return permissions, nil
}

// CountPermissions counts grants matching the access name, role name and
// permission effect.
func (repo *accessRepository) CountPermissions(ctx context.Context, accessName, roleName string, permission entity.Permission) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccessRolePermissionModel{}).
		Joins("JOIN accesses ON accesses.id = access_role_permissions.access_id").
		Joins("JOIN roles ON roles.id = access_role_permissions.role_id").
		Where("accesses.name = ? AND roles.name = ? AND access_role_permissions.permission = ?",
			accessName, roleName, permission.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count permissions")
	}

	return count, nil
}
