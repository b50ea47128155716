package rbac

import (
	"github.com/jansampark/fieldwatch/service/rbac/permission"
	"github.com/jansampark/fieldwatch/service/rbac/role"
)

type rbacImpl struct {
	roles role.Roles
}

// New RBACを初期化
func New() RBAC {
	return &rbacImpl{roles: role.GetSystemRoles()}
}

func (r *rbacImpl) IsGranted(role string, perm permission.Permission) bool {
	return r.roles.HasAndIsGranted(role, perm)
}

func (r *rbacImpl) IsAnyGranted(roles []string, perm permission.Permission) bool {
	for _, role := range roles {
		if r.IsGranted(role, perm) {
			return true
		}
	}
	return false
}

func (r *rbacImpl) GetGrantedPermissions(roleName string) []permission.Permission {
	ro, ok := r.roles[roleName]
	if !ok {
		return nil
	}
	return ro.Permissions().Array()
}
