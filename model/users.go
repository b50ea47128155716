package model

import (
	"time"

	"github.com/guregu/null"
)

// User ユーザー構造体
//
// ユーザー管理自体は外部のユーザーストアの責務で、ここでは位置情報の認可に必要な列のみを持つ
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"userId"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	FullName  string    `gorm:"type:varchar(128);not null;default:''" json:"fullName"`
	Role      string    `gorm:"type:varchar(32);not null" json:"role"`
	CreatedBy null.Int  `gorm:"index" json:"createdBy"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"precision:6" json:"createdAt"`
	UpdatedAt time.Time `gorm:"precision:6" json:"updatedAt"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}

// GetID ユーザーIDを返します
func (u *User) GetID() int64 {
	return u.ID
}

// GetRole ユーザーのロールを返します
func (u *User) GetRole() string {
	return u.Role
}

// IsCreatedBy 指定したユーザーによって作成されたかどうか
func (u *User) IsCreatedBy(userID int64) bool {
	return u.CreatedBy.Valid && u.CreatedBy.Int64 == userID
}
