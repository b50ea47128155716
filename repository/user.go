//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"context"

	"github.com/guregu/null"

	"github.com/jansampark/fieldwatch/model"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Name      string
	FullName  string
	Role      string
	CreatedBy null.Int
}

// UserRepository ユーザーリポジトリ
//
// 位置情報の認可に必要な最小限の操作のみを持つ
type UserRepository interface {
	// CreateUser ユーザーを作成します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// 既に同名のユーザーが存在する場合、ErrAlreadyExistsを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(ctx context.Context, args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// GetUserByName 指定した名前のユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	// GetUsersByIDs 指定したIDの有効なユーザーを取得します
	//
	// 成功した場合、ユーザーの配列とnilを返します。存在しないIDは無視されます。
	// DBによるエラーを返すことがあります。
	GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error)
	// GetActiveUserIDs 全ての有効なユーザーのIDを取得します
	//
	// DBによるエラーを返すことがあります。
	GetActiveUserIDs(ctx context.Context) ([]int64, error)
	// GetActiveUserIDsCreatedBy 指定したユーザーが作成した有効なユーザーのIDを取得します
	//
	// DBによるエラーを返すことがあります。
	GetActiveUserIDsCreatedBy(ctx context.Context, creatorID int64) ([]int64, error)
	// DeactivateUser 指定したユーザーを無効化します
	//
	// 成功した場合、nilを返します。
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	DeactivateUser(ctx context.Context, id int64) error
}
