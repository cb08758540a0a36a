package shared

// Stable machine-readable reason codes surfaced in error responses.
// Clients key off these; the accompanying messages may change.
const (
	CodeTokenMissing       = "token_missing"
	CodeTokenExpired       = "token_expired"
	CodeTokenInvalid       = "token_invalid"
	CodeTokenRevoked       = "token_revoked"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUsernameTaken      = "username_taken"
	CodeTaskNotFound       = "task_not_found"
	CodeValidationError    = "validation_error"
	CodeRateLimited        = "rate_limited"
	CodeInternalError      = "internal_error"
)
