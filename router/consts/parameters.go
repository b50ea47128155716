package consts

const (
	ParamUserID = "userID"
	QueryToken  = "token"
	QueryHours  = "hours"
)
