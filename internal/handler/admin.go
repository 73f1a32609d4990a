package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/model"
	"github.com/phishdirectory/dashboard/internal/view"
)

// The admin screens hide themselves from non-admin roles. This mirrors
// the backend's own checks for usability only; the backend remains the
// authority on every admin route it serves.

type adminUsersPage struct {
	basePage
	AccessDenied bool
	Users        []model.AdminUser
}

// AdminUsers handles GET /admin/users.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	h.renderAdminUsers(w, r, "", "")
}

func (h *Handler) renderAdminUsers(w http.ResponseWriter, r *http.Request, errMsg, success string) {
	data := adminUsersPage{basePage: h.base("Admin: Users")}
	data.Error = errMsg
	data.Success = success

	if !data.User.IsAdmin() {
		data.AccessDenied = true
		h.render(w, r, http.StatusForbidden, view.ScreenAdminUsers, data)
		return
	}

	users, err := h.client.ListUsers(r.Context())
	if err != nil && data.Error == "" {
		data.Error = userMessage(err, "Failed to fetch users")
	}
	data.Users = users

	h.render(w, r, http.StatusOK, view.ScreenAdminUsers, data)
}

// AdminUserCreate handles POST /admin/users.
func (h *Handler) AdminUserCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	req := api.CreateUserRequest{
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		Role:        model.Role(r.PostFormValue("role")),
		UseExtended: r.PostFormValue("useExtended") != "",
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}

	if err := h.client.CreateUser(r.Context(), req); err != nil {
		h.renderAdminUsers(w, r, userMessage(err, "Failed to create user"), "")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// AdminUserUpdate handles POST /admin/users/edit.
func (h *Handler) AdminUserUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	id := r.PostFormValue("id")
	if id == "" {
		h.renderAdminUsers(w, r, "User ID is required", "")
		return
	}

	req := api.UpdateUserRequest{
		Email:       r.PostFormValue("email"),
		Role:        model.Role(r.PostFormValue("role")),
		UseExtended: r.PostFormValue("useExtended") != "",
	}

	if err := h.client.UpdateUser(r.Context(), id, req); err != nil {
		h.renderAdminUsers(w, r, userMessage(err, "Failed to update user"), "")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// AdminUserDelete handles POST /admin/users/{id}/delete.
func (h *Handler) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.client.DeleteUser(r.Context(), id); err != nil {
		h.renderAdminUsers(w, r, userMessage(err, "Failed to delete user"), "")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

type adminDomainsPage struct {
	basePage
	AccessDenied bool
	Domains      []model.Domain
}

// AdminDomains handles GET /admin/domains.
func (h *Handler) AdminDomains(w http.ResponseWriter, r *http.Request) {
	h.renderAdminDomains(w, r, "")
}

func (h *Handler) renderAdminDomains(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := adminDomainsPage{basePage: h.base("Admin: Domains")}
	data.Error = errMsg

	if !data.User.IsAdmin() {
		data.AccessDenied = true
		h.render(w, r, http.StatusForbidden, view.ScreenAdminDomains, data)
		return
	}

	domains, err := h.client.ListDomains(r.Context())
	if err != nil && data.Error == "" {
		data.Error = userMessage(err, "Failed to fetch domains")
	}
	data.Domains = domains

	h.render(w, r, http.StatusOK, view.ScreenAdminDomains, data)
}

// AdminDomainCreate handles POST /admin/domains.
func (h *Handler) AdminDomainCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	req := api.DomainRequest{
		Domain:     r.PostFormValue("domain"),
		IsPhishing: r.PostFormValue("isPhishing") != "",
	}

	if err := h.client.CreateDomain(r.Context(), req); err != nil {
		h.renderAdminDomains(w, r, userMessage(err, "Failed to add domain"))
		return
	}

	http.Redirect(w, r, "/admin/domains", http.StatusSeeOther)
}

// AdminDomainUpdate handles POST /admin/domains/edit.
func (h *Handler) AdminDomainUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	id := r.PostFormValue("id")
	if id == "" {
		h.renderAdminDomains(w, r, "Domain ID is required")
		return
	}

	req := api.DomainRequest{
		Domain:     r.PostFormValue("domain"),
		IsPhishing: r.PostFormValue("isPhishing") != "",
	}

	if err := h.client.UpdateDomain(r.Context(), id, req); err != nil {
		h.renderAdminDomains(w, r, userMessage(err, "Failed to update domain"))
		return
	}

	http.Redirect(w, r, "/admin/domains", http.StatusSeeOther)
}

// AdminDomainDelete handles POST /admin/domains/{id}/delete.
func (h *Handler) AdminDomainDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.client.DeleteDomain(r.Context(), id); err != nil {
		h.renderAdminDomains(w, r, userMessage(err, "Failed to delete domain"))
		return
	}

	http.Redirect(w, r, "/admin/domains", http.StatusSeeOther)
}

type adminMetricsPage struct {
	basePage
	AccessDenied bool
	Metrics      *model.AdminMetrics
}

// AdminMetrics handles GET /admin/metrics.
func (h *Handler) AdminMetrics(w http.ResponseWriter, r *http.Request) {
	data := adminMetricsPage{basePage: h.base("Admin: Metrics")}

	if !data.User.IsAdmin() {
		data.AccessDenied = true
		h.render(w, r, http.StatusForbidden, view.ScreenAdminMetrics, data)
		return
	}

	m, err := h.client.AdminMetrics(r.Context())
	if err != nil {
		data.Error = userMessage(err, "Failed to fetch metrics")
	} else {
		data.Metrics = m
	}

	h.render(w, r, http.StatusOK, view.ScreenAdminMetrics, data)
}
