package role

import (
	"github.com/jansampark/fieldwatch/service/rbac/permission"
)

// GetSystemRoles システム定義ロールのRolesを返します
func GetSystemRoles() Roles {
	return Roles{
		SuperAdmin: &systemRole{
			name:        SuperAdmin,
			permissions: permission.PermissionsFromArray(permission.List),
		},
		Admin: &systemRole{
			name:        Admin,
			permissions: permission.PermissionsFromArray(adminPerms),
		},
		BoothBoy: &systemRole{
			name:        BoothBoy,
			permissions: permission.PermissionsFromArray(fieldPerms),
		},
		Candidate: &systemRole{
			name:        Candidate,
			permissions: permission.PermissionsFromArray(fieldPerms),
		},
	}
}

type systemRole struct {
	name        string
	permissions permission.Permissions
}

func (r *systemRole) Name() string {
	return r.name
}

func (r *systemRole) IsGranted(p permission.Permission) bool {
	return r.permissions.Contains(p)
}

func (r *systemRole) Permissions() permission.Permissions {
	return r.permissions
}

// Role ロールインターフェース
type Role interface {
	Name() string
	IsGranted(p permission.Permission) bool
	Permissions() permission.Permissions
}

// Roles ロールセット
type Roles map[string]Role

// Add セットにロールを追加します
func (roles Roles) Add(role Role) {
	roles[role.Name()] = role
}

// IsGranted セットで指定した権限が許可されているかどうか
func (roles Roles) IsGranted(p permission.Permission) bool {
	for _, v := range roles {
		if v.IsGranted(p) {
			return true
		}
	}
	return false
}

// HasAndIsGranted セットが指定したロールを持ち、そのロールに指定した権限が許可されているかどうか
func (roles Roles) HasAndIsGranted(r string, p permission.Permission) bool {
	set, ok := roles[r]
	if !ok {
		return false
	}
	return set.IsGranted(p)
}
