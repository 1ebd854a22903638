package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avolkhin/shopadmin/internal/models"
	"github.com/avolkhin/shopadmin/internal/session"
)

// roundTripperFunc lets a test stand in for the whole transport.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newClient(fn roundTripperFunc, opts ...Option) (*Client, *session.MemoryStore) {
	store := session.NewMemoryStore()
	opts = append(opts, WithHTTPClient(newTestClient(fn)))
	return New("http://example.com", store, opts...), store
}

func TestLogin_PersistsSession(t *testing.T) {
	c, store := newClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/admin/auth/login" {
			t.Errorf("path = %q; want /api/admin/auth/login", req.URL.Path)
		}
		if got := req.Header.Get("Authorization"); got != "" {
			t.Errorf("login sent Authorization header %q; want none", got)
		}
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if body["email"] != "admin@example.com" || body["password"] != "s3cret" {
			t.Errorf("login body = %v", body)
		}
		return jsonResponse(200, `{"success":true,"data":{"token":"tok-1","user":{"id":"u1","email":"admin@example.com"}}}`), nil
	})

	user, err := c.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Errorf("user.Email = %q", user.Email)
	}

	sess, err := store.Get()
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	if sess.Token != "tok-1" || sess.Email != "admin@example.com" {
		t.Errorf("stored session = %+v; want token tok-1 and login email", sess)
	}
	if !c.IsAuthenticated() {
		t.Error("IsAuthenticated = false after successful login")
	}
}

func TestLogin_InvalidCredentials_PersistsNothing(t *testing.T) {
	c, store := newClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"success":false,"message":"invalid credentials"}`), nil
	})

	_, err := c.Login(context.Background(), "admin@example.com", "wrong")
	if err == nil {
		t.Fatal("Login succeeded with invalid credentials")
	}
	if got := Message(err); got != "invalid credentials" {
		t.Errorf("message = %q; want server message", got)
	}
	sess, _ := store.Get()
	if sess.Token != "" || sess.Email != "" {
		t.Errorf("failed login persisted session %+v", sess)
	}
	if c.IsAuthenticated() {
		t.Error("IsAuthenticated = true after failed login")
	}
}

func TestGetProducts_OmitsUnsetParams(t *testing.T) {
	var gotQuery url.Values
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		gotQuery = req.URL.Query()
		return jsonResponse(200, `{"success":true,"data":{"products":[{"id":"p1"}],"pagination":{"page":2,"limit":10,"total":25,"totalPages":3}}}`), nil
	})

	list, err := c.GetProducts(context.Background(), ProductListParams{Page: 2, Limit: 10, Status: "active"})
	if err != nil {
		t.Fatalf("GetProducts returned error: %v", err)
	}
	if got := gotQuery.Get("page"); got != "2" {
		t.Errorf("page = %q; want 2", got)
	}
	if got := gotQuery.Get("limit"); got != "10" {
		t.Errorf("limit = %q; want 10", got)
	}
	if got := gotQuery.Get("status"); got != "active" {
		t.Errorf("status = %q; want active", got)
	}
	for _, absent := range []string{"search", "sort"} {
		if _, ok := gotQuery[absent]; ok {
			t.Errorf("unset param %q was serialized", absent)
		}
	}
	if list.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d; want 3", list.Pagination.TotalPages)
	}
}

func TestGetProducts_ZeroParamsMeanEmptyQuery(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.RawQuery != "" {
			t.Errorf("query = %q; want empty", req.URL.RawQuery)
		}
		return jsonResponse(200, `{"success":true,"data":{"products":[],"pagination":{"page":1,"limit":20,"total":0,"totalPages":1}}}`), nil
	})
	if _, err := c.GetProducts(context.Background(), ProductListParams{}); err != nil {
		t.Fatalf("GetProducts returned error: %v", err)
	}
}

func TestGetOrders_NetworkError(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	_, err := c.GetOrders(context.Background(), OrderListParams{})
	if err == nil {
		t.Fatal("GetOrders returned nil error on network outage")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T; want *Error", err)
	}
	if !apiErr.Transport {
		t.Error("Transport = false for a transport failure")
	}
	if apiErr.Message != "Network error" {
		t.Errorf("Message = %q; want %q", apiErr.Message, "Network error")
	}
	if !IsTransport(err) {
		t.Error("IsTransport = false")
	}
}

func TestUnauthorized_ClearsSessionAndNotifies(t *testing.T) {
	calls := 0
	invalidated := 0
	var sentAuth []string
	var store *session.MemoryStore
	var c *Client
	c, store = newClient(func(req *http.Request) (*http.Response, error) {
		calls++
		sentAuth = append(sentAuth, req.Header.Get("Authorization"))
		return jsonResponse(401, `{"success":false,"message":"token expired"}`), nil
	}, WithSessionInvalidatedHook(func() { invalidated++ }))

	if err := store.Set(session.Session{Token: "stale", Email: "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	_, err := c.GetOrders(context.Background(), OrderListParams{})
	if !IsUnauthorized(err) {
		t.Fatalf("IsUnauthorized = false, err = %v", err)
	}
	if got := Message(err); got != "token expired" {
		t.Errorf("message = %q", got)
	}
	if invalidated != 1 {
		t.Errorf("invalidation hook fired %d times; want 1", invalidated)
	}
	sess, _ := store.Get()
	if sess.Token != "" || sess.Email != "" {
		t.Errorf("session not cleared after 401: %+v", sess)
	}

	// A subsequent call must observe the cleared token.
	_, _ = c.GetOrders(context.Background(), OrderListParams{})
	if calls != 2 {
		t.Fatalf("transport calls = %d; want 2", calls)
	}
	if sentAuth[0] != "Bearer stale" {
		t.Errorf("first call Authorization = %q", sentAuth[0])
	}
	if sentAuth[1] != "" {
		t.Errorf("second call Authorization = %q; want none after teardown", sentAuth[1])
	}
}

func TestServerError_MalformedBody(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(500, `<html>boom</html>`), nil
	})

	_, err := c.GetProduct(context.Background(), "p1")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T; want *Error", err)
	}
	if apiErr.Message != "Request failed" {
		t.Errorf("Message = %q; want generic fallback", apiErr.Message)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d; want 500", apiErr.StatusCode)
	}
}

func TestCreateProduct_FieldErrorsPassedThrough(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"success":false,"message":"validation failed","errors":[{"path":["name"],"message":"required"}]}`), nil
	})

	_, err := c.CreateProduct(context.Background(), models.ProductInput{})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T; want *Error", err)
	}
	if len(apiErr.FieldErrors) != 1 {
		t.Fatalf("FieldErrors = %v; want one entry", apiErr.FieldErrors)
	}
	if apiErr.FieldErrors[0].Field() != "name" || apiErr.FieldErrors[0].Message != "required" {
		t.Errorf("field error = %+v", apiErr.FieldErrors[0])
	}
}

func TestGetProduct_UnwrappedBodyUsedAsPayload(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		// No data wrapper: the whole body is the payload.
		return jsonResponse(200, `{"id":"p1","name":"Enamel Mug","priceCents":1450}`), nil
	})

	p, err := c.GetProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProduct returned error: %v", err)
	}
	if p.ID != "p1" || p.Name != "Enamel Mug" || p.PriceCents != 1450 {
		t.Errorf("product = %+v", p)
	}
}

func TestUpdateOrderStatus_Shipped(t *testing.T) {
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPut {
			t.Errorf("method = %s; want PUT", req.Method)
		}
		if req.URL.Path != "/api/admin/orders/o1/status" {
			t.Errorf("path = %q", req.URL.Path)
		}
		var body struct {
			Status   string `json:"status"`
			Tracking *struct {
				Carrier        string `json:"carrier"`
				TrackingNumber string `json:"trackingNumber"`
			} `json:"tracking"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Status != "shipped" {
			t.Errorf("status = %q", body.Status)
		}
		if body.Tracking == nil || body.Tracking.Carrier != "DHL" {
			t.Errorf("tracking = %+v", body.Tracking)
		}
		return jsonResponse(200, `{"success":true,"data":{"id":"o1","status":"shipped","totalCents":2900}}`), nil
	})

	o, err := c.UpdateOrderStatus(context.Background(), "o1", "shipped", &models.Tracking{Carrier: "DHL", TrackingNumber: "JD0001"})
	if err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if o.Status != "shipped" {
		t.Errorf("order status = %q; want shipped", o.Status)
	}
}

func TestDeleteImage_EscapesIDIntoOnePathSegment(t *testing.T) {
	const id = "img/2024 01.png"
	c, _ := newClient(func(req *http.Request) (*http.Response, error) {
		const prefix = "/api/admin/uploads/images/"
		escaped := req.URL.EscapedPath()
		if !strings.HasPrefix(escaped, prefix) {
			t.Fatalf("escaped path = %q", escaped)
		}
		seg := strings.TrimPrefix(escaped, prefix)
		if strings.Contains(seg, "/") {
			t.Errorf("id spilled across segments: %q", seg)
		}
		dec, err := url.PathUnescape(seg)
		if err != nil {
			t.Fatalf("PathUnescape(%q): %v", seg, err)
		}
		if dec != id {
			t.Errorf("round-trip = %q; want %q", dec, id)
		}
		return jsonResponse(200, `{"success":true,"message":"image deleted"}`), nil
	})

	if err := c.DeleteImage(context.Background(), id); err != nil {
		t.Fatalf("DeleteImage returned error: %v", err)
	}
}

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	c, store := newClient(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("Authorization = %q", got)
		}
		return jsonResponse(200, `{"success":true,"data":{"id":"u1","email":"a@b.c"}}`), nil
	})
	_ = store.Set(session.Session{Token: "tok-9", Email: "a@b.c"})

	user, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user.Email != "a@b.c" {
		t.Errorf("user = %+v", user)
	}
}

func TestLogout_LocalAndIdempotent(t *testing.T) {
	c, store := newClient(func(req *http.Request) (*http.Response, error) {
		t.Fatal("Logout must not touch the network")
		return nil, nil
	})
	_ = store.Set(session.Session{Token: "tok", Email: "a@b.c"})

	if !c.IsAuthenticated() {
		t.Fatal("IsAuthenticated = false before logout")
	}
	if err := c.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("IsAuthenticated = true after logout")
	}
	if err := c.Logout(); err != nil {
		t.Errorf("second Logout returned error: %v", err)
	}
}

func TestUnauthorized_InFlightCallUnaffectedByTeardown(t *testing.T) {
	inFlightStarted := make(chan struct{})
	inFlightRelease := make(chan struct{})
	var inFlightAuth string
	invalidated := 0

	store := session.NewMemoryStore()
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/api/admin/products":
			// Hold this call open; its token is already attached.
			inFlightAuth = req.Header.Get("Authorization")
			close(inFlightStarted)
			<-inFlightRelease
			return jsonResponse(200, `{"success":true,"data":{"products":[{"id":"p1"}],"pagination":{"page":1,"limit":20,"total":1,"totalPages":1}}}`), nil
		case "/api/admin/orders":
			return jsonResponse(401, `{"success":false,"message":"token expired"}`), nil
		default:
			t.Errorf("unexpected path %q", req.URL.Path)
			return jsonResponse(404, `{"success":false,"message":"not found"}`), nil
		}
	})
	c := New("http://example.com", store,
		WithHTTPClient(&http.Client{Transport: transport}),
		WithSessionInvalidatedHook(func() { invalidated++ }))

	if err := store.Set(session.Session{Token: "tok-live", Email: "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	inFlightDone := make(chan error, 1)
	go func() {
		_, err := c.GetProducts(context.Background(), ProductListParams{})
		inFlightDone <- err
	}()
	<-inFlightStarted

	// A second call 401s and tears the session down while the first
	// is still in flight.
	_, err := c.GetOrders(context.Background(), OrderListParams{})
	if !IsUnauthorized(err) {
		t.Fatalf("IsUnauthorized = false, err = %v", err)
	}
	sess, _ := store.Get()
	if sess.Token != "" || sess.Email != "" {
		t.Fatalf("session not cleared while call in flight: %+v", sess)
	}

	close(inFlightRelease)
	if err := <-inFlightDone; err != nil {
		t.Fatalf("in-flight call failed after teardown: %v", err)
	}

	if inFlightAuth != "Bearer tok-live" {
		t.Errorf("in-flight Authorization = %q; want the token attached before teardown", inFlightAuth)
	}
	if invalidated != 1 {
		t.Errorf("invalidation hook fired %d times; want 1", invalidated)
	}
	// The settled call must not have restored the cleared session.
	sess, _ = store.Get()
	if sess.Token != "" || sess.Email != "" {
		t.Errorf("session restored after in-flight call settled: %+v", sess)
	}
	if c.IsAuthenticated() {
		t.Error("IsAuthenticated = true after teardown")
	}
}
