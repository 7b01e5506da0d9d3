package models

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
	RoleUser   Role = "USER"
)

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
)

// SessionUser is the identity provider's view of a signed-in user. It is
// fetched fresh on every server render and never stored locally.
type SessionUser struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	Image         string     `json:"image,omitempty"`
	Role          Role       `json:"role"`
	Status        UserStatus `json:"status"`
	Phone         string     `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// UserInfo is the slimmed-down record page handlers work with.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Role  Role   `json:"role"`
}

// GuestUser is returned whenever session resolution fails for any reason.
// The dashboard degrades to the least-privileged role instead of erroring.
func GuestUser() UserInfo {
	return UserInfo{
		Name:  "MediStore User",
		Email: "user@medistore.com",
		Role:  RoleUser,
	}
}
