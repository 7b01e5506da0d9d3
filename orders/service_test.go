package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medistore/backend"
	"medistore/models"
)

func TestCheckoutRequestValidate(t *testing.T) {
	full := func() CheckoutRequest {
		return CheckoutRequest{Address: models.ShippingAddress{
			FullName:     "Amina Khan",
			Phone:        "01700000000",
			AddressLine1: "12 Lake Road",
			City:         "Dhaka",
		}}
	}

	complete := full()
	if msg := complete.Validate(); msg != "" {
		t.Errorf("complete address should validate, got %q", msg)
	}

	cases := []struct {
		name  string
		strip func(*CheckoutRequest)
		want  string
	}{
		{"full name", func(r *CheckoutRequest) { r.Address.FullName = "" }, "Full name is required"},
		{"phone", func(r *CheckoutRequest) { r.Address.Phone = "" }, "Phone is required"},
		{"address line", func(r *CheckoutRequest) { r.Address.AddressLine1 = "" }, "Address line 1 is required"},
		{"city", func(r *CheckoutRequest) { r.Address.City = "" }, "City is required"},
	}
	for _, c := range cases {
		req := full()
		c.strip(&req)
		if msg := req.Validate(); msg != c.want {
			t.Errorf("%s: Validate() = %q, want %q", c.name, msg, c.want)
		}
	}
}

func TestCheckoutDefaultsLabel(t *testing.T) {
	var got CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"data":{"id":"o1"}}`))
	}))
	defer srv.Close()

	svc := &Service{API: &backend.Client{BaseURL: srv.URL, HTTP: srv.Client()}}
	req := CheckoutRequest{Address: models.ShippingAddress{
		FullName: "A", Phone: "1", AddressLine1: "x", City: "Dhaka",
	}, ShippingFee: 50}

	if _, err := svc.Checkout(context.Background(), "", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Address.Label != "Home" {
		t.Errorf("label = %q, want default Home", got.Address.Label)
	}
	if got.ShippingFee != 50 {
		t.Errorf("shippingFee = %v, want 50", got.ShippingFee)
	}
}

func TestMyCoercesUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"o1","status":"REFUND_REQUESTED"},{"id":"o2","status":"SHIPPED"}]}`))
	}))
	defer srv.Close()

	svc := &Service{API: &backend.Client{BaseURL: srv.URL, HTTP: srv.Client()}}
	list, err := svc.My(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].Status != models.OrderPending {
		t.Errorf("unknown status = %s, want PENDING", list[0].Status)
	}
	if list[1].Status != models.OrderShipped {
		t.Errorf("known status mangled: %s", list[1].Status)
	}
}
