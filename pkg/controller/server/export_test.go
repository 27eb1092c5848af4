package server

var (
	Logger      = logger
	WithJWKSURL = withJWKSURL
)
