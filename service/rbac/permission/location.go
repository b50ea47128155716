package permission

const (
	// UpdateMyLocation 自分の位置情報報告権限
	UpdateMyLocation = Permission("update_my_location")
	// GetSubordinateLocations 配下ユーザーの最新位置情報取得権限
	GetSubordinateLocations = Permission("get_subordinate_locations")
	// GetLocationHistory 配下ユーザーの位置情報履歴取得権限
	GetLocationHistory = Permission("get_location_history")
	// ConnectLocationStream 位置情報ストリーム接続権限
	ConnectLocationStream = Permission("connect_location_stream")
	// RunCleanup 古い位置情報の手動削除権限
	RunCleanup = Permission("run_cleanup")
)
