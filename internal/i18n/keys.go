// Package i18n provides internationalization support for the waitlist service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyInvalidCredentials indicates a failed staff login.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyEntryNotFound indicates the queue entry does not exist.
	ErrKeyEntryNotFound = "error.entry_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyServiceUnavailable indicates the store is missing or its breaker is open.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyStreamUnavailable indicates the live stream has no room for another subscriber.
	ErrKeyStreamUnavailable = "error.stream_unavailable"
	ErrKeyValidationName      = "error.validation.name"
	ErrKeyValidationPartySize = "error.validation.party_size"
	ErrKeyValidationStatus    = "error.validation.status"
	ErrKeyValidationID        = "error.validation.id"
	// ErrKeyValidationSeating prefixes planner input errors.
	ErrKeyValidationSeating = "error.validation.seating"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

