package ctxkey

// CtxKey context.Context用のキータイプ
type CtxKey int

const (
	// UserID ユーザーIDキー
	UserID CtxKey = iota
	// User ユーザーキー
	User
)
