package constant

// Rate-limit actions. Composed with the client IP into counter keys,
// e.g. "login:203.0.113.7", so each action has an independent budget.
const (
	ActionLogin          = "login"
	ActionPasswordEmail  = "password_email"
	ActionPasswordChange = "password_change"
)

// Session keys.
const (
	SessionKeyUserID    = "user_id"
	SessionKeyUserName  = "user_name"
	SessionKeyUserEmail = "user_email"
	SessionKeyCSRF      = "csrf_token"
)

// Redirect targets.
const (
	HomeURL = "/"
	MainURL = "/main"
)
