package errors

// Error codes for standardized error responses.
const (
	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"

	// Dataset errors
	ErrCodeRosterUnavailable = "roster_unavailable"
	ErrCodeRosterLoadFailed  = "roster_load_failed"

	// Game errors
	ErrCodeInvalidQuestionIndex = "invalid_question_index"
	ErrCodeNoActiveSession      = "no_active_session"
	ErrCodeUnknownMode          = "unknown_mode"

	// Token errors
	ErrCodeInvalidToken = "invalid_token"
	ErrCodeTokenExpired = "token_expired"

	// WebSocket errors
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeUnknownMessageType = "unknown_message_type"
	ErrCodeConnectionError    = "connection_error"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"

	// Feature availability
	ErrCodeFeatureNotAvailable = "feature_not_available"
)
