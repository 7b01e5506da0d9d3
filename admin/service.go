// Package admin backs the admin dashboard: platform stats plus user, product
// and order management over the backend's admin API.
package admin

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

func (s *Service) OverviewStats(ctx context.Context, cookie string) (models.OverviewStats, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/admin/stats/overview", nil, cookie)
	if res.Err != nil {
		return models.OverviewStats{}, res.Err
	}
	var stats models.OverviewStats
	if err := res.Decode(&stats); err != nil {
		return models.OverviewStats{}, &backend.Error{Message: backend.GenericErrMsg}
	}
	return stats, nil
}

func (s *Service) MonthlySales(ctx context.Context, cookie string, year int) ([]models.MonthlySales, *backend.Error) {
	q := url.Values{"year": {strconv.Itoa(year)}}
	res := s.API.Get(ctx, "/api/v1/admin/stats/sales/monthly", q, cookie)
	if res.Err != nil {
		return nil, res.Err
	}
	var sales []models.MonthlySales
	if err := res.Decode(&sales); err != nil {
		return nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	return sales, nil
}

func listQuery(page, limit int, extra map[string]string) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	for k, v := range extra {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func (s *Service) Users(ctx context.Context, cookie string, page, limit int, search string) ([]models.SessionUser, *models.Pagination, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/admin/users", listQuery(page, limit, map[string]string{"search": search}), cookie)
	if res.Err != nil {
		return nil, nil, res.Err
	}
	var users []models.SessionUser
	if err := res.Decode(&users); err != nil {
		return nil, nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	return users, res.Pagination, nil
}

func (s *Service) Products(ctx context.Context, cookie string, page, limit int, search, status string) ([]models.Product, *models.Pagination, *backend.Error) {
	q := listQuery(page, limit, map[string]string{"search": search, "status": status})
	res := s.API.Get(ctx, "/api/v1/admin/products", q, cookie)
	if res.Err != nil {
		return nil, nil, res.Err
	}
	var list []models.Product
	if err := res.Decode(&list); err != nil {
		return nil, nil, &backend.Error{Message: backend.GenericErrMsg}
	}
	return list, res.Pagination, nil
}

func (s *Service) Orders(ctx context.Context, cookie string, page, limit int, search, status string) ([]models.Order, *models.Pagination, *backend.Error) {
	q := listQuery(page, limit, map[string]string{"search": search, "status": status})
	res := s.API.Get(ctx, "/api/v1/admin/orders", q, cookie)
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

// Mutations. Values pass through; the backend validates them.

func (s *Service) UpdateUserRole(ctx context.Context, cookie, userID, role string) *backend.Error {
	return s.API.Patch(ctx, "/api/v1/admin/users/"+userID+"/role", map[string]string{"role": role}, cookie).Err
}

func (s *Service) BlockOrUnblockUser(ctx context.Context, cookie, userID, status string) *backend.Error {
	return s.API.Patch(ctx, "/api/v1/admin/users/"+userID+"/block", map[string]string{"status": status}, cookie).Err
}

func (s *Service) DeleteUser(ctx context.Context, cookie, userID string) *backend.Error {
	return s.API.Delete(ctx, "/api/v1/admin/users/"+userID, cookie).Err
}

func (s *Service) UpdateProductStatus(ctx context.Context, cookie, productID, status string) *backend.Error {
	return s.API.Patch(ctx, "/api/v1/admin/products/"+productID+"/status", map[string]string{"status": status}, cookie).Err
}

func (s *Service) DeleteProduct(ctx context.Context, cookie, productID string) *backend.Error {
	return s.API.Delete(ctx, "/api/v1/admin/products/"+productID, cookie).Err
}

func (s *Service) UpdateOrderStatus(ctx context.Context, cookie, orderID string, status models.OrderStatus) *backend.Error {
	return s.API.Patch(ctx, "/api/v1/admin/orders/"+orderID+"/status", map[string]string{"status": string(status)}, cookie).Err
}
