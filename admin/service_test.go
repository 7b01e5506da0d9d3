package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"medistore/backend"
	"medistore/models"
)

func TestOrdersForwardsListingParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		got = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"o1","status":"WEIRD"}],"pagination":{"total":1,"page":2,"limit":10,"totalPages":1}}`))
	}))
	defer srv.Close()

	svc := &Service{API: &backend.Client{BaseURL: srv.URL, HTTP: srv.Client()}}
	list, pg, err := svc.Orders(context.Background(), "", 2, 10, "amina", "PENDING")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Get("page") != "2" || got.Get("limit") != "10" {
		t.Errorf("paging not forwarded: %v", got)
	}
	if got.Get("search") != "amina" {
		t.Errorf("search = %q, want amina", got.Get("search"))
	}
	if got.Get("status") != "PENDING" {
		t.Errorf("status = %q, want PENDING", got.Get("status"))
	}

	if list[0].Status != models.OrderPending {
		t.Errorf("unknown status = %s, want PENDING", list[0].Status)
	}
	if pg == nil || pg.Page != 2 {
		t.Errorf("pagination not passed through: %+v", pg)
	}
}

func TestOrdersOmitsEmptyFilters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	svc := &Service{API: &backend.Client{BaseURL: srv.URL, HTTP: srv.Client()}}
	if _, _, err := svc.Orders(context.Background(), "", 1, 10, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Has("search") || got.Has("status") {
		t.Errorf("empty filters must be omitted: %v", got)
	}
}
