package role

import (
	"github.com/jansampark/fieldwatch/service/rbac/permission"
)

const (
	// BoothBoy 現場作業員ロール
	BoothBoy = "booth_boy"
	// Candidate 候補者ロール
	Candidate = "candidate"
)

var fieldPerms = []permission.Permission{
	permission.UpdateMyLocation,
}
