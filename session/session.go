// Package session resolves the signed-in user from the auth provider's
// session cookie. Resolution happens once per server render; any failure
// degrades to the guest record so a page never breaks on identity lookup.
package session

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"medistore/globals"
	"medistore/models"
	"medistore/utils"
)

type Resolver struct {
	AuthURL string
	HTTP    *http.Client
}

// NewResolver reads AUTH_URL from the environment, falling back to API_URL
// since the provider is usually mounted on the backend host.
func NewResolver() *Resolver {
	return &Resolver{
		AuthURL: utils.Env("AUTH_URL", utils.Env("API_URL", "http://localhost:5000")),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// sessionBody is the get-session response; only the user field matters.
type sessionBody struct {
	User *struct {
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Image string      `json:"image"`
		Role  models.Role `json:"role"`
	} `json:"user"`
}

// Resolve maps the inbound request to a UserInfo. The second return reports
// whether a real session was found; the first is always usable.
func (s *Resolver) Resolve(r *http.Request) (models.UserInfo, bool) {
	if _, err := r.Cookie(globals.SessionCookieName); err != nil {
		return models.GuestUser(), false
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, s.AuthURL+"/api/auth/get-session", nil)
	if err != nil {
		return models.GuestUser(), false
	}
	req.Header.Set("Cookie", r.Header.Get("Cookie"))

	res, err := s.HTTP.Do(req)
	if err != nil {
		log.Println("session: get-session request failed:", err)
		return models.GuestUser(), false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.GuestUser(), false
	}

	var body sessionBody
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Println("session: get-session decode failed:", err)
		return models.GuestUser(), false
	}
	if body.User == nil {
		return models.GuestUser(), false
	}

	info := models.UserInfo{
		Name:  body.User.Name,
		Email: body.User.Email,
		Image: body.User.Image,
		Role:  body.User.Role,
	}
	if info.Name == "" {
		info.Name = "MediStore User"
	}
	if info.Email == "" {
		info.Email = "user@medistore.com"
	}
	switch info.Role {
	case models.RoleAdmin, models.RoleSeller, models.RoleUser:
	default:
		info.Role = models.RoleUser
	}
	return info, true
}
