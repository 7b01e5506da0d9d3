package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medistore/admin"
	"medistore/backend"
	"medistore/cart"
	"medistore/globals"
	"medistore/orders"
	"medistore/products"
	"medistore/seller"
	"medistore/session"

	"github.com/julienschmidt/httprouter"
)

// fakeBackend serves the identity endpoint for the given role plus a generic
// empty envelope for every data endpoint.
func fakeBackend(role string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/get-session" {
			fmt.Fprintf(w, `{"user":{"name":"Test","email":"t@example.com","role":"%s"}}`, role)
			return
		}
		w.Write([]byte(`{"data":{}}`))
	}))
}

func newTestHandler(srv *httptest.Server) *Handler {
	api := &backend.Client{BaseURL: srv.URL, HTTP: srv.Client()}
	return &Handler{
		R:        NewRenderer(),
		Sessions: &session.Resolver{AuthURL: srv.URL, HTTP: srv.Client()},
		Products: &products.Service{API: api},
		Cart:     &cart.Service{API: api},
		Orders:   &orders.Service{API: api},
		Admin:    &admin.Service{API: api},
		Seller:   &seller.Service{API: api},
	}
}

func dashboardRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: globals.SessionCookieName, Value: "tok"})
	return r
}

func TestDashboardShellByRole(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"ADMIN", "Admin Dashboard"},
		{"SELLER", "Seller Dashboard"},
		{"USER", "Welcome back"},
		{"SOMETHING_ELSE", "Welcome back"},
	}
	for _, c := range cases {
		srv := fakeBackend(c.role)
		h := newTestHandler(srv)

		w := httptest.NewRecorder()
		h.Dashboard(w, dashboardRequest(), nil)
		srv.Close()

		if w.Code != http.StatusOK {
			t.Errorf("role %s: status = %d", c.role, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), c.want) {
			t.Errorf("role %s: page does not contain %q", c.role, c.want)
		}
	}
}

func TestDashboardGuestGetsUserShell(t *testing.T) {
	srv := fakeBackend("USER")
	defer srv.Close()
	h := newTestHandler(srv)

	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil), nil)
	if !strings.Contains(w.Body.String(), "Welcome back") {
		t.Error("guest must land on the user subtree")
	}
}

func TestGuardAdminRedirectsOtherRoles(t *testing.T) {
	srv := fakeBackend("SELLER")
	defer srv.Close()
	h := newTestHandler(srv)

	called := false
	guarded := h.GuardAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	w := httptest.NewRecorder()
	guarded(w, dashboardRequest(), nil)
	if called {
		t.Error("seller must not reach an admin page")
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestGuardAdminAllowsAdmin(t *testing.T) {
	srv := fakeBackend("ADMIN")
	defer srv.Close()
	h := newTestHandler(srv)

	called := false
	guarded := h.GuardAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	guarded(httptest.NewRecorder(), dashboardRequest(), nil)
	if !called {
		t.Error("admin must reach the admin page")
	}
}

func TestGuardedPageResolvesSessionOnce(t *testing.T) {
	sessionHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/get-session" {
			sessionHits++
			w.Write([]byte(`{"user":{"name":"A","email":"a@example.com","role":"ADMIN"}}`))
			return
		}
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()
	h := newTestHandler(srv)

	w := httptest.NewRecorder()
	h.GuardAdmin(h.AdminOverview)(w, dashboardRequest(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if sessionHits != 1 {
		t.Errorf("guarded render hit the identity provider %d times, want 1", sessionHits)
	}

	sessionHits = 0
	h.Dashboard(httptest.NewRecorder(), dashboardRequest(), nil)
	if sessionHits != 1 {
		t.Errorf("dashboard shell hit the identity provider %d times, want 1", sessionHits)
	}
}

func TestSidebarMatchesRole(t *testing.T) {
	srv := fakeBackend("ADMIN")
	defer srv.Close()
	h := newTestHandler(srv)

	w := httptest.NewRecorder()
	h.AdminOverview(w, dashboardRequest(), nil)
	body := w.Body.String()
	if !strings.Contains(body, "Manage Users") {
		t.Error("admin sidebar missing from admin page")
	}
	if strings.Contains(body, "My Products") {
		t.Error("seller sidebar leaked onto admin page")
	}
}
