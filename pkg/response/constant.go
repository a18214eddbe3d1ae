package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage      = "Something went wrong"
	TooManyRequestsMessage   = "Too many requests"
	InternalServerErrorCode  = 500
	TooManyRequestsErrorCode = 429
	BadRequestErrorCode      = 1
)
