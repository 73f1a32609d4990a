package api

import (
	"context"
	"net/http"

	"github.com/phishdirectory/dashboard/internal/model"
)

// LoginResponse carries the token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login posts credentials to POST /user/login. The call is unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp LoginResponse
	if err := c.call(ctx, http.MethodPost, "/user/login", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignupRequest is the payload for POST /user/signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Signup registers a new account. The call is unauthenticated.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.call(ctx, http.MethodPost, "/user/signup", req, false, nil)
}

// Profile fetches the signed-in user from GET /user/me.
func (c *Client) Profile(ctx context.Context) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := c.call(ctx, http.MethodGet, "/user/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfileRequest is the payload for PATCH /user/me.
// Password fields are sent only when a password change was requested.
type UpdateProfileRequest struct {
	Email           string `json:"email"`
	UseExtended     bool   `json:"useExtended"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// UpdateProfile updates the signed-in user's account settings.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.call(ctx, http.MethodPatch, "/user/me", req, true, nil)
}
