package event

const (
	// UserCreated ユーザーが追加された
	// 	Fields:
	// 		user_id: int64
	// 		user: *model.User
	UserCreated = "user.created"
	// UserDeactivated ユーザーが無効化された
	// 	Fields:
	// 		user_id: int64
	UserDeactivated = "user.deactivated"
	// UserOnline ユーザーがオンラインになった
	// 	Fields:
	// 		user_id: int64
	// 		datetime: time.Time
	UserOnline = "user.online"
	// UserOffline ユーザーがオフラインになった
	// 	Fields:
	// 		user_id: int64
	// 		datetime: time.Time
	UserOffline = "user.offline"
	// UserLocationUpdated ユーザーの位置情報が更新された
	// 	Fields:
	// 		user_id: int64
	// 		sample: model.LocationSample
	UserLocationUpdated = "user_location.updated"
	// UserLocationsSwept 古い位置情報履歴が削除された
	// 	Fields:
	// 		deleted_rows: int64
	// 		evicted_users: []int64
	UserLocationsSwept = "user_location.swept"
	// WSConnected WSにユーザーが接続した
	// 	Fields:
	// 		user_id: int64
	// 		req: *http.Request
	WSConnected = "ws.connected"
	// WSDisconnected WSからユーザーが切断した
	// 	Fields:
	// 		user_id: int64
	// 		req: *http.Request
	WSDisconnected = "ws.disconnected"
)
