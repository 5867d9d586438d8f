package response

const (
	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
	PreflightStatus         = "preflight successful"
)
