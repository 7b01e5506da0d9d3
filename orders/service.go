// Package orders covers the buyer's order history and checkout.
package orders

import (
	"context"
	"encoding/json"

	"medistore/backend"
	"medistore/models"
)

type Service struct {
	API *backend.Client
}

// My returns the caller's order history.
func (s *Service) My(ctx context.Context, cookie string) ([]models.Order, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/order/me", nil, cookie)
	if res.Err != nil {
		return nil, res.Err
	}
	var list []models.Order
	if err := res.Decode(&list); err != nil {
		return nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	coerceStatuses(list)
	return list, nil
}

// ByID returns one of the caller's orders.
func (s *Service) ByID(ctx context.Context, cookie, orderID string) (models.Order, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/order/me/"+orderID, nil, cookie)
	if res.Err != nil {
		return models.Order{}, res.Err
	}
	var o models.Order
	if err := res.Decode(&o); err != nil {
		return models.Order{}, &backend.Error{Message: backend.GenericErrMsg}
	}
	o.Status = models.ToOrderStatus(string(o.Status))
	return o, nil
}

// CheckoutRequest is the payload the checkout form submits.
type CheckoutRequest struct {
	Address        models.ShippingAddress `json:"address"`
	DiscountAmount float64                `json:"discountAmount"`
	ShippingFee    float64                `json:"shippingFee"`
}

// Validate enforces the required address fields; everything else is the
// backend's job.
func (c *CheckoutRequest) Validate() string {
	switch {
	case c.Address.FullName == "":
		return "Full name is required"
	case c.Address.Phone == "":
		return "Phone is required"
	case c.Address.AddressLine1 == "":
		return "Address line 1 is required"
	case c.Address.City == "":
		return "City is required"
	}
	return ""
}

// Checkout places the order from the server-held cart.
func (s *Service) Checkout(ctx context.Context, cookie string, req CheckoutRequest) (json.RawMessage, *backend.Error) {
	if req.Address.Label == "" {
		req.Address.Label = "Home"
	}
	res := s.API.Post(ctx, "/api/v1/order/checkout", req, cookie)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Data, nil
}

// Unknown backend status strings render as PENDING.
func coerceStatuses(list []models.Order) {
	for i := range list {
		list[i].Status = models.ToOrderStatus(string(list[i].Status))
	}
}
