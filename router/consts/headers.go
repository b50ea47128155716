package consts

const (
	HeaderCacheControl = "Cache-Control"
	HeaderVersion      = "X-FIELDWATCH-VERSION"
)
