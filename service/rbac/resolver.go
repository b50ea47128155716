package rbac

import (
	"context"

	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/service/rbac/role"
	"github.com/jansampark/fieldwatch/utils/set"
)

// Visibility 監視者が参照できるユーザーの範囲
type Visibility int

const (
	// VisibilityNone 誰も参照できない
	VisibilityNone Visibility = iota
	// VisibilityCreated 自分が作成した有効なユーザーを参照できる
	VisibilityCreated
	// VisibilityAll 全ての有効なユーザーを参照できる
	VisibilityAll
)

// String implements fmt.Stringer interface.
func (v Visibility) String() string {
	switch v {
	case VisibilityCreated:
		return "created"
	case VisibilityAll:
		return "all"
	default:
		return "none"
	}
}

// VisibilityOf 指定したロールのVisibilityを返します
func VisibilityOf(r string) Visibility {
	switch r {
	case role.SuperAdmin:
		return VisibilityAll
	case role.Admin:
		return VisibilityCreated
	default:
		return VisibilityNone
	}
}

// Resolver 監視者の配下ユーザー集合を解決します
type Resolver struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewResolver Resolverを生成します
func NewResolver(users repository.UserRepository, logger *zap.Logger) *Resolver {
	return &Resolver{
		users:  users,
		logger: logger.Named("resolver"),
	}
}

// SubordinatesOf 指定した監視者が参照できるユーザーIDの集合を返します
//
// 取得に失敗した場合はログに出力し、空集合を返します
func (r *Resolver) SubordinatesOf(ctx context.Context, supervisor *model.User) set.Set[int64] {
	if supervisor == nil || !supervisor.IsActive {
		return set.New[int64]()
	}

	var (
		ids []int64
		err error
	)
	switch VisibilityOf(supervisor.GetRole()) {
	case VisibilityAll:
		ids, err = r.users.GetActiveUserIDs(ctx)
	case VisibilityCreated:
		ids, err = r.users.GetActiveUserIDsCreatedBy(ctx, supervisor.GetID())
	default:
		return set.New[int64]()
	}
	if err != nil {
		r.logger.Error("failed to resolve subordinates", zap.Error(err), zap.Int64("supervisorId", supervisor.GetID()))
		return set.New[int64]()
	}
	return set.From(ids...)
}

// CanObserve 監視者が指定したユーザーを参照できるかどうか
func (r *Resolver) CanObserve(ctx context.Context, supervisor *model.User, userID int64) bool {
	return r.SubordinatesOf(ctx, supervisor).Contains(userID)
}
