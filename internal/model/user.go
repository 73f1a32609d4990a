// Package model defines domain entities for the application.
package model

import "time"

// Role is the access level assigned to a user by the backend.
type Role string

// Known roles. The backend owns the authoritative set; unknown values
// pass through untouched.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserProfile is the resolved identity of the signed-in user.
// It is replaced wholesale on every successful profile fetch and
// never partially mutated.
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Role        Role   `json:"role"`
	UseExtended bool   `json:"useExtended"`
}

// IsAdmin reports whether the profile carries the admin role.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DisplayName returns a human-friendly name for the header bar.
func (u *UserProfile) DisplayName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// AdminUser is a user row in the admin user table.
// Opaque DTO: passed through from the backend without client-side validation.
type AdminUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	UseExtended bool      `json:"useExtended"`
	CreatedAt   time.Time `json:"createdAt"`
}
