// Package products fetches the public medicine catalog.
package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"medistore/backend"
	"medistore/models"
	"medistore/rdx"
)

// PageSize is the fixed catalog page size; skip is derived from it.
const PageSize = 12

// cacheTTL keeps public listings hot for a moment between renders.
const cacheTTL = 10 * time.Second

type ListParams struct {
	Search       string
	Manufacturer string
	DosageForm   string
	MinPrice     string
	MaxPrice     string
	InStock      bool
	HasDiscount  bool
	SellerID     string
	Page         int
	SortBy       string
	SortOrder    string
}

// Query builds the backend query string. Empty filters are omitted; page,
// limit and skip are always sent.
func (p ListParams) Query() url.Values {
	if p.Page < 1 {
		p.Page = 1
	}
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("search", p.Search)
	set("manufacturer", p.Manufacturer)
	set("dosageForm", p.DosageForm)
	set("minPrice", p.MinPrice)
	set("maxPrice", p.MaxPrice)
	if p.InStock {
		q.Set("inStock", "true")
	}
	if p.HasDiscount {
		q.Set("hasDiscount", "true")
	}
	set("sellerId", p.SellerID)
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(PageSize))
	q.Set("skip", strconv.Itoa((p.Page-1)*PageSize))
	set("sortBy", p.SortBy)
	set("sortOrder", p.SortOrder)
	return q
}

type Service struct {
	API *backend.Client
	// CacheList toggles the Redis listing cache; tests and degraded
	// deployments run without it.
	CacheList bool
}

type ListResult struct {
	Products   []models.Product
	Pagination *models.Pagination
	Err        *backend.Error
}

// List fetches one catalog page. Public listings are served from a 10s Redis
// cache keyed by the normalized query; cache errors fall through to the
// backend.
func (s *Service) List(ctx context.Context, cookie string, p ListParams) ListResult {
	q := p.Query()

	fetch := func() ([]byte, error) {
		res := s.API.Get(ctx, "/api/v1/medicines", q, cookie)
		if res.Err != nil {
			return nil, res.Err
		}
		return json.Marshal(struct {
			Data       json.RawMessage    `json:"data"`
			Pagination *models.Pagination `json:"pagination,omitempty"`
		}{res.Data, res.Pagination})
	}

	var raw []byte
	var err error
	if s.CacheList {
		key := fmt.Sprintf("medicines:list:%s", q.Encode())
		raw, err = rdx.Cached(ctx, key, cacheTTL, fetch)
	} else {
		raw, err = fetch()
	}
	if err != nil {
		if be, ok := err.(*backend.Error); ok {
			return ListResult{Err: be}
		}
		return ListResult{Err: &backend.Error{Message: backend.GenericErrMsg}}
	}

	var body struct {
		Data       []models.Product   `json:"data"`
		Pagination *models.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ListResult{Err: &backend.Error{Message: backend.GenericErrMsg}}
	}
	if body.Data == nil {
		body.Data = []models.Product{}
	}
	return ListResult{Products: body.Data, Pagination: body.Pagination}
}

// ByID fetches one product for the detail page.
func (s *Service) ByID(ctx context.Context, cookie, productID string) (models.Product, *backend.Error) {
	res := s.API.Get(ctx, "/api/v1/medicines/"+productID, nil, cookie)
	if res.Err != nil {
		return models.Product{}, res.Err
	}
	var p models.Product
	if err := res.Decode(&p); err != nil {
		return models.Product{}, &backend.Error{Message: backend.GenericErrMsg}
	}
	return p, nil
}
