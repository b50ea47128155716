package consts

const (
	KeyUserID      = "userID"
	KeyUser        = "user"
	KeyParamUserID = "paramUserID"
)
