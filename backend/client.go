// Package backend wraps the marketplace API. Every call forwards the inbound
// request's cookies and normalizes the response into a {data, pagination,
// error} result, so page handlers never see a raw transport failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medistore/models"
	"medistore/utils"
)

// GenericErrMsg is surfaced whenever the backend gives us nothing better.
const GenericErrMsg = "Something went wrong"

// Error is the normalized failure branch. Status is the upstream HTTP status,
// or 0 for network/parse failures.
type Error struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// LoginRequired reports whether the failure should surface as a
// login-required prompt instead of a generic error.
func (e *Error) LoginRequired() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Result is the discriminated outcome of one backend call. Exactly one of
// Data/Err is meaningful.
type Result struct {
	Data       json.RawMessage
	Pagination *models.Pagination
	Err        *Error
}

// Decode unmarshals the data branch into v.
func (r Result) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New reads API_URL from the environment, defaulting to the local backend.
func New() *Client {
	return &Client{
		BaseURL: utils.Env("API_URL", "http://localhost:5000"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope matches the backend's usual {data, pagination, message} body.
// Some endpoints return the object directly; in that case the whole body
// becomes the data branch.
type envelope struct {
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Message    string             `json:"message"`
}

// Do issues one request. cookie is the inbound request's Cookie header,
// forwarded verbatim; empty means unauthenticated.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, cookie string) Result {
	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Result{Err: &Error{Message: GenericErrMsg}}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return Result{Err: &Error{Message: GenericErrMsg}}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return Result{Err: &Error{Message: GenericErrMsg}}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{Err: &Error{Message: GenericErrMsg}}
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			// Bodies that are not JSON objects (bare arrays, text) still
			// count as data on success.
			if res.StatusCode >= 200 && res.StatusCode < 300 && json.Valid(raw) {
				return Result{Data: raw}
			}
			return Result{Err: &Error{Status: res.StatusCode, Message: GenericErrMsg}}
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = GenericErrMsg
		}
		return Result{Err: &Error{Status: res.StatusCode, Message: msg}}
	}

	data := env.Data
	if data == nil {
		data = raw
	}
	return Result{Data: data, Pagination: env.Pagination}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, cookie string) Result {
	return c.Do(ctx, http.MethodGet, path, query, nil, cookie)
}

func (c *Client) Post(ctx context.Context, path string, body any, cookie string) Result {
	return c.Do(ctx, http.MethodPost, path, nil, body, cookie)
}

func (c *Client) Patch(ctx context.Context, path string, body any, cookie string) Result {
	return c.Do(ctx, http.MethodPatch, path, nil, body, cookie)
}

func (c *Client) Delete(ctx context.Context, path string, cookie string) Result {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, cookie)
}

// CookieHeader extracts the raw Cookie header to forward upstream.
func CookieHeader(r *http.Request) string {
	return r.Header.Get("Cookie")
}
