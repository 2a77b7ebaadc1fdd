package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessRolePermissions_AllowedAccessNames(t *testing.T) {
	roleID := uuid.New()

	perms := AccessRolePermissions{
		{RoleID: roleID, AccessName: "articles", Permission: PermissionAllowed},
		{RoleID: roleID, AccessName: "settings", Permission: PermissionDenied},
		{RoleID: roleID, AccessName: "media", Permission: PermissionAllowed},
	}

	assert.Equal(t, []string{"articles", "media"}, perms.AllowedAccessNames())
}

func TestAccessRolePermissions_AllowedAccessNames_Empty(t *testing.T) {
	assert.Empty(t, AccessRolePermissions{}.AllowedAccessNames())

	denied := AccessRolePermissions{
		{AccessName: "settings", Permission: PermissionDenied},
	}
	assert.Empty(t, denied.AllowedAccessNames())
}
