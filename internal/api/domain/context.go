package domain

// Request-context keys set by the identity middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)
