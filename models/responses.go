package models

// AuthResponse is the success body of the login and signup endpoints:
// the bearer token to persist plus the server-side user record to mirror
// into session state.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIMessage is the error body most endpoints return on rejection.
// The embedded message, when present, takes priority over the client's
// generic failure texts in user-facing notifications.
type APIMessage struct {
	Message string `json:"message"`
}
