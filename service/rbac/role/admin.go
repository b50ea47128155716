package role

import (
	"github.com/jansampark/fieldwatch/service/rbac/permission"
)

// Admin 自分が作成したユーザーを監視できる管理者ロール
const Admin = "admin"

var adminPerms = []permission.Permission{
	permission.UpdateMyLocation,
	permission.GetSubordinateLocations,
	permission.GetLocationHistory,
	permission.ConnectLocationStream,
}
