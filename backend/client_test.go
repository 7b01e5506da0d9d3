package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"medistore/models"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestDoEnvelopeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"m1","name":"Napa"}],"pagination":{"total":1,"page":1,"limit":12,"totalPages":1}}`))
	}))
	defer srv.Close()

	res := testClient(srv).Get(context.Background(), "/api/v1/medicines", nil, "")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	var list []models.Product
	if err := res.Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Napa" {
		t.Errorf("unexpected data: %+v", list)
	}
	if res.Pagination == nil || res.Pagination.Total != 1 || res.Pagination.Limit != 12 {
		t.Errorf("pagination not passed through: %+v", res.Pagination)
	}
}

func TestDoBackendMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Medicine not found"}`))
	}))
	defer srv.Close()

	res := testClient(srv).Get(context.Background(), "/api/v1/medicines/nope", nil, "")
	if res.Err == nil {
		t.Fatal("expected an error")
	}
	if res.Err.Message != "Medicine not found" {
		t.Errorf("Message = %q, want backend's message", res.Err.Message)
	}
	if res.Err.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", res.Err.Status)
	}
}

func TestDoNonJSONFailureGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	res := testClient(srv).Get(context.Background(), "/api/v1/medicines", nil, "")
	if res.Err == nil || res.Err.Message != GenericErrMsg {
		t.Errorf("expected generic message, got %+v", res.Err)
	}
}

func TestDoNetworkErrorGetsGenericMessage(t *testing.T) {
	c := &Client{BaseURL: "http://127.0.0.1:1", HTTP: &http.Client{}}
	res := c.Get(context.Background(), "/api/v1/medicines", nil, "")
	if res.Err == nil || res.Err.Message != GenericErrMsg {
		t.Errorf("expected generic message, got %+v", res.Err)
	}
	if res.Err != nil && res.Err.Status != 0 {
		t.Errorf("network failures carry no upstream status, got %d", res.Err.Status)
	}
}

func TestDoBareArrayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"o1","status":"SHIPPED"}]`))
	}))
	defer srv.Close()

	res := testClient(srv).Get(context.Background(), "/api/v1/order/me", nil, "")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	var list []models.Order
	if err := res.Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Status != models.OrderShipped {
		t.Errorf("unexpected data: %+v", list)
	}
}

func TestDoForwardsCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	cookie := "better-auth.session_token=abc123"
	testClient(srv).Get(context.Background(), "/api/v1/cart/me", nil, cookie)
	if gotCookie != cookie {
		t.Errorf("Cookie forwarded as %q, want %q", gotCookie, cookie)
	}
}

func TestDoQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	q := url.Values{}
	q.Set("search", "napa extra")
	q.Set("page", "2")
	testClient(srv).Get(context.Background(), "/api/v1/medicines", q, "")
	if gotQuery.Get("search") != "napa extra" || gotQuery.Get("page") != "2" {
		t.Errorf("query not forwarded: %v", gotQuery)
	}
}

func TestLoginRequired(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{0, false},
	}
	for _, c := range cases {
		e := &Error{Status: c.status}
		if got := e.LoginRequired(); got != c.want {
			t.Errorf("LoginRequired() with status %d = %v, want %v", c.status, got, c.want)
		}
	}
}
