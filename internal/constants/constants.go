package constants

// Session / context keys
const (
	SessionCookieName = "teamtrack_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// Invitation codes are canonical UUID strings.
const (
	InvitationCodeLength = 36
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AI task suggestion
const (
	MaxSuggestedTasks = 20
)
