package constants

const (
	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyWorkerID   = "worker_id"
	ContextKeyWorkerRole = "worker_role"

	// Senior-age fallback when a site row carries no threshold
	DefaultSeniorAge = 65

	// QR token validity window in seconds
	DefaultQRValiditySeconds = 30
)
