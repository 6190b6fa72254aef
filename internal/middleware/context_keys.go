package middleware

// Keys set on the gin context by AuthMiddleware and RequestID.
const (
	ContextUserID    = "user_id"
	ContextCompanyID = "company_id"
	ContextRole      = "role"
	ContextRequestID = "request_id"
)
