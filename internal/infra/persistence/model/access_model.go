package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Permissions []AccessRolePermissionModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// AccessModel mirrors the 'accesses' table.
type AccessModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessModel) TableName() string {
	return "accesses"
}

// AccessRolePermissionModel mirrors the 'access_role_permissions' table.
// The composite primary key enforces at most one grant per (role, access).
type AccessRolePermissionModel struct {
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccessID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Permission string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time

	Access *AccessModel `gorm:"foreignKey:AccessID"`
}

// TableName explicitly sets the table name for GORM.
func (AccessRolePermissionModel) TableName() string {
	return "access_role_permissions"
}
