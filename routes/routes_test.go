package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medistore/admin"
	"medistore/backend"
	"medistore/ratelim"
	"medistore/seller"
	"medistore/session"

	"github.com/julienschmidt/httprouter"
)

// offlineResolver never reaches a provider, so every request resolves to
// guest and stops at the role guard. That keeps these tests about the route
// wiring, not the backend.
func offlineResolver() *session.Resolver {
	return &session.Resolver{AuthURL: "http://127.0.0.1:1", HTTP: &http.Client{}}
}

func exhaustLimiter(t *testing.T, router *httprouter.Router, method, path string) {
	t.Helper()
	limited := false
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.7:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Errorf("%s %s never rate limited within a single burst window", method, path)
	}
}

func TestAdminMutationsRateLimited(t *testing.T) {
	router := httprouter.New()
	api := &backend.Client{BaseURL: "http://127.0.0.1:1", HTTP: &http.Client{}}
	AddAdminRoutes(router, admin.NewHandler(&admin.Service{API: api}), offlineResolver(), ratelim.NewRateLimiter())

	exhaustLimiter(t, router, http.MethodPatch, "/api/admin/users/u1/role")
}

func TestSellerMutationsRateLimited(t *testing.T) {
	router := httprouter.New()
	api := &backend.Client{BaseURL: "http://127.0.0.1:1", HTTP: &http.Client{}}
	AddSellerRoutes(router, seller.NewHandler(&seller.Service{API: api}), offlineResolver(), ratelim.NewRateLimiter())

	exhaustLimiter(t, router, http.MethodDelete, "/api/seller/medicines/m1")
}
