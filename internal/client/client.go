// Package client implements the administrative API client. Every
// operation goes through a single request executor that attaches the
// bearer token from the session store and normalizes all outcomes —
// transport failures, server errors, malformed bodies — into a typed
// *Error, so callers never see a raw transport error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/avolkhin/shopadmin/internal/session"
)

// Client issues authenticated calls against the admin API.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	log      *zap.Logger

	// onSessionInvalidated fires after a 401 response has cleared the
	// session store. The view layer subscribes to return the user to
	// the login screen; the client itself performs no navigation.
	onSessionInvalidated func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a
// timeout or a custom transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSessionInvalidatedHook registers fn to run every time a 401
// response tears down the stored session.
func WithSessionInvalidatedHook(fn func()) Option {
	return func(c *Client) {
		c.onSessionInvalidated = fn
	}
}

// New constructs a Client targeting baseURL. An empty baseURL issues
// requests against relative paths (same-origin behind a proxy).
// sessions is consulted at the start of every call and cleared on 401.
func New(baseURL string, sessions session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		sessions: sessions,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// request describes one outbound call.
type request struct {
	method string
	path   string
	query  string
	// body is JSON-encoded when non-nil. Mutually exclusive with form.
	body any
	// form is a pre-encoded multipart payload.
	form *formPayload
	// skipAuth suppresses token injection (login has no token yet).
	skipAuth bool
}

// serverEnvelope is the shape the backend is allowed to respond with.
// Every field is optional; unparseable bodies leave all fields zero.
type serverEnvelope struct {
	Success   *bool           `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	ErrText   string          `json:"error"`
	ErrorCode string          `json:"errorCode"`
	Errors    []FieldError    `json:"errors"`
}

// do executes one call and returns the raw domain payload. The payload
// is the envelope's data field when the server wrapped it, otherwise
// the whole response body.
func (c *Client) do(ctx context.Context, r request) (json.RawMessage, error) {
	target := c.baseURL + r.path
	if r.query != "" {
		target += "?" + r.query
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, &Error{Message: "Request failed", cause: err}
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case r.form != nil:
		body = r.form.buf
		contentType = r.form.contentType
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, &Error{Message: "Request failed", cause: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !r.skipAuth {
		if sess, err := c.sessions.Get(); err == nil && sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("transport failure",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err))
		return nil, &Error{Transport: true, Message: "Network error", cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Transport: true, Message: "Network error", cause: err}
	}

	// A body that fails to parse is treated as an empty envelope.
	var env serverEnvelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = env.ErrText
		}
		if msg == "" {
			msg = "Request failed"
		}
		return nil, &Error{
			StatusCode:  resp.StatusCode,
			Message:     msg,
			ErrorCode:   env.ErrorCode,
			FieldErrors: env.Errors,
		}
	}

	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data, nil
	}
	// Servers that do not wrap their payload send it at the top level.
	return raw, nil
}

// invalidateSession tears down the stored credentials after a 401 and
// notifies the subscriber. A call already in flight is unaffected;
// only calls issued afterwards see the cleared token.
func (c *Client) invalidateSession() {
	if err := c.sessions.Clear(); err != nil {
		c.log.Warn("failed to clear session after 401", zap.Error(err))
	}
	if c.onSessionInvalidated != nil {
		c.onSessionInvalidated()
	}
}

// call executes r and decodes the payload into T. A payload that does
// not decode leaves T zero; the decode failure is tolerated the same
// way an unparseable envelope is.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var out T
	raw, err := c.do(ctx, r)
	if err != nil {
		return out, err
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out, nil
}
