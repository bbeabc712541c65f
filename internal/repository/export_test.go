package repository

var (
	NullableBytes = nullableBytes
	BoolToInt     = boolToInt
	FormatTime    = formatTime
	PostKey       = postKey
)
