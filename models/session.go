package models

// Session is the record kept in Redis for one logged-in browser. The tokens
// are random, not signed; the CSRF token travels in a JavaScript-readable
// cookie and must come back in the X-CSRF-Token header on mutating requests.
type Session struct {
	SessionToken string
	UserID       string
	CreatedAt    string
	ExpiresAt    string
	LastActivity string
	CSRFToken    string
	UserAgent    string
	IPAddress    string
}
