package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeInvalidOtp   = "INVALID_OTP"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// StatusForCode maps a business code to its HTTP status. Unknown codes are 500.
func StatusForCode(code string) int {
	switch code {
	case CodeInvalidInput, CodeInvalidOtp:
		return 400
	case CodeUnauthorized:
		return 401
	case CodeForbidden:
		return 403
	case CodeNotFound:
		return 404
	case CodeConflict, CodeInvalidState:
		return 409
	case CodeServiceUnavailable:
		return 503
	default:
		return 500
	}
}
