package client

import (
	"context"
	"net/http"

	"github.com/avolkhin/shopadmin/internal/models"
	"github.com/avolkhin/shopadmin/internal/session"
)

const (
	loginPath       = "/api/admin/auth/login"
	currentUserPath = "/api/admin/auth/me"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the payload the backend returns on a successful login.
type LoginResult struct {
	Token string          `json:"token"`
	User  models.Identity `json:"user"`
}

// Login exchanges credentials for a session. On success the returned
// token and the user's email are persisted together; on failure nothing
// is stored. Login never injects a token — none exists yet.
func (c *Client) Login(ctx context.Context, email, password string) (models.Identity, error) {
	res, err := call[LoginResult](ctx, c, request{
		method:   http.MethodPost,
		path:     loginPath,
		body:     loginRequest{Email: email, Password: password},
		skipAuth: true,
	})
	if err != nil {
		return models.Identity{}, err
	}
	if res.Token == "" {
		return models.Identity{}, &Error{Message: "Request failed", ErrorCode: "missing_token"}
	}
	if err := c.sessions.Set(session.Session{Token: res.Token, Email: res.User.Email}); err != nil {
		return models.Identity{}, &Error{Message: "failed to persist session", cause: err}
	}
	return res.User, nil
}

// CurrentUser returns the identity bound to the stored token.
func (c *Client) CurrentUser(ctx context.Context) (models.Identity, error) {
	return call[models.Identity](ctx, c, request{
		method: http.MethodGet,
		path:   currentUserPath,
	})
}

// Logout clears the persisted session. It is purely local — no server
// round-trip — and safe to call when already logged out.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// IsAuthenticated reports whether a token is currently stored. It does
// not validate the token against the server; a stale token surfaces as
// a 401 on the next authenticated call.
func (c *Client) IsAuthenticated() bool {
	sess, err := c.sessions.Get()
	return err == nil && sess.Token != ""
}
