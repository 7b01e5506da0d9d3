// Package seller backs the seller dashboard: overview stats, the seller's
// own medicines, and the order items routed to them.
package seller

import (
	"context"
	"net/url"
	"strconv"

	"medistore/backend"
	"medistore/models"
)

type Service struct {
	API *backend.Client
}

func (s *Service) Overview(ctx context.Context, cookie string) (models.DashboardOverview, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/seller/dashboard/overview", nil, cookie)
	if res.Err != nil {
		return models.DashboardOverview{}, res.Err
	}
	var overview models.DashboardOverview
	if err := res.Decode(&overview); err != nil {
		return models.DashboardOverview{}, &backend.Error{Message: backend.GenericErrMsg}
	}
	return overview, nil
}

func (s *Service) MyProducts(ctx context.Context, cookie string, page, limit int, search string) ([]models.Product, *models.Pagination, *backend.Error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	res := s.API.Get(ctx, "/api/v1/seller/medicines", q, cookie)
	if res.Err != nil {
		return nil, nil, res.Err
	}
	var list []models.Product
	if err := res.Decode(&list); err != nil {
		return nil, nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	return list, res.Pagination, nil
}

func (s *Service) ProductByID(ctx context.Context, cookie, productID string) (models.Product, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/seller/medicines/"+productID, nil, cookie)
	if res.Err != nil {
		return models.Product{}, res.Err
	}
	var p models.Product
	if err := res.Decode(&p); err != nil {
		return models.Product{}, &backend.Error{Message: backend.GenericErrMsg}
	}
	return p, nil
}

// ValidateInput applies the create/update form rules. Returns an empty
// string when the input is acceptable.
func ValidateInput(in *models.ProductInput) string {
	switch {
	case in.Name == "":
		return "Product name is required."
	case in.Price <= 0:
		return "Price must be greater than 0."
	case in.Stock < 0:
		return "Stock cannot be negative."
	}
	if in.LowStockThreshold == 0 {
		in.LowStockThreshold = 10
	}
	if in.Status == "" {
		in.Status = string(models.ProductActive)
	}
	if in.Images == nil {
		in.Images = []string{}
	}
	return ""
}

func (s *Service) CreateProduct(ctx context.Context, cookie string, in models.ProductInput) *backend.Error {
	if msg := ValidateInput(&in); msg != "" {
		return &backend.Error{Status: 400, Message: msg}
	}
	return s.API.Post(ctx, "/api/v1/seller/medicines", in, cookie).Err
}

func (s *Service) UpdateProduct(ctx context.Context, cookie, productID string, in models.ProductInput) *backend.Error {
	if msg := ValidateInput(&in); msg != "" {
		return &backend.Error{Status: 400, Message: msg}
	}
	return s.API.Patch(ctx, "/api/v1/seller/medicines/"+productID, in, cookie).Err
}

func (s *Service) DeleteProduct(ctx context.Context, cookie, productID string) *backend.Error {
	return s.API.Delete(ctx, "/api/v1/seller/medicines/"+productID, cookie).Err
}

func (s *Service) MyOrders(ctx context.Context, cookie string, page, limit int, status string) ([]models.Order, *models.Pagination, *backend.Error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", status)
	}
	res := s.API.Get(ctx, "/api/v1/order/seller/my-orders", q, cookie)
	if res.Err != nil {
		return nil, nil, res.Err
	}
	var list []models.Order
	if err := res.Decode(&list); err != nil {
		return nil, nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	for i := range list {
		list[i].Status = models.ToOrderStatus(string(list[i].Status))
	}
	return list, res.Pagination, nil
}

func (s *Service) OrderByID(ctx context.Context, cookie, orderID string) (models.Order, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/seller/orders/"+orderID, nil, cookie)
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

func (s *Service) UpdateOrderStatus(ctx context.Context, cookie, orderID, status string) *backend.Error {
	return s.API.Patch(ctx, "/api/v1/seller/orders/"+orderID, map[string]string{"status": status}, cookie).Err
}
