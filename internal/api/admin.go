package api

import (
	"context"
	"net/http"

	"github.com/phishdirectory/dashboard/internal/model"
)

// Admin-only routes follow the same bearer-auth pattern as the rest of
// the API. Authorization is enforced by the backend; the dashboard only
// hides the screens for non-admin roles.

// ListDomains fetches all flagged domains from GET /admin/domain.
func (c *Client) ListDomains(ctx context.Context) ([]model.Domain, error) {
	var domains []model.Domain
	if err := c.call(ctx, http.MethodGet, "/admin/domain", nil, true, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// DomainRequest is the payload for domain create and update calls.
type DomainRequest struct {
	Domain     string `json:"domain"`
	IsPhishing bool   `json:"isPhishing"`
}

// CreateDomain flags a new domain via POST /admin/domain.
func (c *Client) CreateDomain(ctx context.Context, req DomainRequest) error {
	return c.call(ctx, http.MethodPost, "/admin/domain", req, true, nil)
}

// UpdateDomain edits a flagged domain via PATCH /admin/domain/:id.
func (c *Client) UpdateDomain(ctx context.Context, id string, req DomainRequest) error {
	return c.call(ctx, http.MethodPatch, "/admin/domain/"+id, req, true, nil)
}

// DeleteDomain removes a flagged domain via DELETE /admin/domain/:id.
func (c *Client) DeleteDomain(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/admin/domain/"+id, nil, true, nil)
}

// ListUsers fetches all users from GET /admin/user.
func (c *Client) ListUsers(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := c.call(ctx, http.MethodGet, "/admin/user", nil, true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUserRequest is the payload for POST /admin/user/new.
type CreateUserRequest struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Role        model.Role `json:"role"`
	UseExtended bool       `json:"useExtended"`
}

// CreateUser provisions a user via POST /admin/user/new.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	return c.call(ctx, http.MethodPost, "/admin/user/new", req, true, nil)
}

// UpdateUserRequest is the payload for PATCH /admin/user/:id.
type UpdateUserRequest struct {
	Email       string     `json:"email"`
	Role        model.Role `json:"role"`
	UseExtended bool       `json:"useExtended"`
}

// UpdateUser edits a user via PATCH /admin/user/:id.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) error {
	return c.call(ctx, http.MethodPatch, "/admin/user/"+id, req, true, nil)
}

// DeleteUser removes a user via DELETE /admin/user/:id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/admin/user/"+id, nil, true, nil)
}

// AdminMetrics fetches aggregate counters from GET /admin/metrics.
func (c *Client) AdminMetrics(ctx context.Context) (*model.AdminMetrics, error) {
	var m model.AdminMetrics
	if err := c.call(ctx, http.MethodGet, "/admin/metrics", nil, true, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SiteMetrics fetches the public counters from GET /misc/metrics.
func (c *Client) SiteMetrics(ctx context.Context) (*model.SiteMetrics, error) {
	var m model.SiteMetrics
	if err := c.call(ctx, http.MethodGet, "/misc/metrics", nil, true, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
