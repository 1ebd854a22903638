// Package session holds the persisted client-side session credentials:
// the bearer token and the email it was issued for. The pair is always
// written and cleared together.
package session

// Session is the credential pair bound to a logged-in admin user.
// A zero Token means "unauthenticated".
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Store is the single unit of persistent session state the API client
// reads at the start of every call and clears on logout or auth failure.
type Store interface {
	// Get returns the current session. A missing session is not an
	// error; it is reported as a zero Session.
	Get() (Session, error)
	// Set replaces the stored session with s.
	Set(s Session) error
	// Clear removes the stored session. Clearing an absent session
	// is a no-op.
	Clear() error
}
