//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"context"
	"time"

	"github.com/jansampark/fieldwatch/model"
)

// LocationRepository 位置情報履歴リポジトリ
type LocationRepository interface {
	// CreateUserLocation 位置情報を履歴に追記します
	//
	// 成功した場合、nilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateUserLocation(ctx context.Context, sample model.LocationSample) error
	// GetUserLocationHistory 指定したユーザーのsince以降の位置情報履歴を新しい順に取得します
	//
	// 成功した場合、履歴の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUserLocationHistory(ctx context.Context, userID int64, since time.Time) ([]*model.UserLocation, error)
	// DeleteUserLocationsBefore before より前の位置情報履歴を削除します
	//
	// 成功した場合、削除した件数とnilを返します。
	// DBによるエラーを返すことがあります。
	DeleteUserLocationsBefore(ctx context.Context, before time.Time) (int64, error)
}
