// Package cart mirrors the server-held shopping cart. Every mutation is a
// round trip; the displayed cart only changes after the backend confirms.
package cart

import (
	"context"

	"medistore/backend"
	"medistore/models"
)

type Service struct {
	API *backend.Client
}

// Me fetches the caller's cart. An unauthenticated or failed lookup resolves
// to an empty cart, not an error, so public pages render a zero badge.
func (s *Service) Me(ctx context.Context, cookie string) models.Cart {
	res := s.API.Get(ctx, "/api/v1/cart/me", nil, cookie)
	if res.Err != nil {
		return models.EmptyCart()
	}
	var c models.Cart
	if err := res.Decode(&c); err != nil {
		return models.EmptyCart()
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c
}

func (s *Service) Add(ctx context.Context, cookie, productID string, quantity int) *backend.Error {
	res := s.API.Post(ctx, "/api/v1/cart/add", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}, cookie)
	return res.Err
}

func (s *Service) UpdateItem(ctx context.Context, cookie, itemID string, quantity int) *backend.Error {
	res := s.API.Patch(ctx, "/api/v1/cart/item/"+itemID, map[string]any{
		"quantity": quantity,
	}, cookie)
	return res.Err
}

func (s *Service) RemoveItem(ctx context.Context, cookie, itemID string) *backend.Error {
	res := s.API.Delete(ctx, "/api/v1/cart/item/"+itemID, cookie)
	return res.Err
}
