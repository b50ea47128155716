package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNilID 汎用エラー 引数のIDが0です
	ErrNilID = errors.New("nil id")
	// ErrNotFound 汎用エラー 見つかりません
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists 汎用エラー 既に存在しています
	ErrAlreadyExists = errors.New("already exists")
)

// ArgumentError 引数エラー
type ArgumentError struct {
	FieldName string
	Message   string
}

// Error Messageを返します
func (ae *ArgumentError) Error() string {
	return ae.Message
}

// ArgError 引数エラーを発生させます
func ArgError(field, message string) *ArgumentError {
	return &ArgumentError{FieldName: field, Message: message}
}

// IsArgError 引数エラーかどうか
func IsArgError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// Wrap 操作名を付けてエラーをラップします
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
