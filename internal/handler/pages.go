package handler

import (
	"net/http"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/model"
	"github.com/phishdirectory/dashboard/internal/view"
)

type homePage struct {
	basePage
	Metrics *model.SiteMetrics
}

// Home handles GET /. A failed metrics fetch degrades to an alert; the
// quick-check form still renders.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homePage{basePage: h.base("Dashboard")}

	m, err := h.client.SiteMetrics(r.Context())
	if err != nil {
		data.Error = userMessage(err, "Failed to load metrics")
	} else {
		data.Metrics = m
	}

	h.render(w, r, http.StatusOK, view.ScreenHome, data)
}

type domainCheckPage struct {
	basePage
	Query  string
	Result *model.DomainCheck
}

// DomainCheck handles GET /domain-check. With a ?domain= query the
// lookup runs; without one only the form renders.
func (h *Handler) DomainCheck(w http.ResponseWriter, r *http.Request) {
	data := domainCheckPage{
		basePage: h.base("Domain Check"),
		Query:    r.URL.Query().Get("domain"),
	}

	if data.Query != "" {
		result, err := h.client.CheckDomain(r.Context(), data.Query)
		if err != nil {
			data.Error = userMessage(err, "Failed to check domain")
		} else {
			data.Result = result
			h.recorder.IncDomainCheck(result.IsPhishing)
		}
	}

	h.render(w, r, http.StatusOK, view.ScreenDomainCheck, data)
}

type emailCheckPage struct {
	basePage
	Query  string
	Result *model.EmailCheck
}

// EmailCheck handles GET /email-check.
func (h *Handler) EmailCheck(w http.ResponseWriter, r *http.Request) {
	data := emailCheckPage{
		basePage: h.base("Email Check"),
		Query:    r.URL.Query().Get("email"),
	}

	if data.Query != "" {
		result, err := h.client.CheckEmail(r.Context(), data.Query)
		if err != nil {
			data.Error = userMessage(err, "Failed to check email")
		} else {
			data.Result = result
			h.recorder.IncEmailCheck(result.IsValid)
		}
	}

	h.render(w, r, http.StatusOK, view.ScreenEmailCheck, data)
}

type profilePage struct {
	basePage
	Email       string
	UseExtended bool
}

// ProfilePage handles GET /profile, prefilled from the resolved user.
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	data := profilePage{basePage: h.base("Profile")}
	if user := data.User; user != nil {
		data.Email = user.Email
		data.UseExtended = user.UseExtended
	}
	h.render(w, r, http.StatusOK, view.ScreenProfile, data)
}

// ProfileSubmit handles POST /profile. Password fields are only sent
// when a new password was entered; the profile is refreshed afterwards
// so the header reflects the change.
func (h *Handler) ProfileSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	data := profilePage{
		basePage:    h.base("Profile"),
		Email:       r.PostFormValue("email"),
		UseExtended: r.PostFormValue("useExtended") != "",
	}

	newPassword := r.PostFormValue("newPassword")
	if newPassword != "" && newPassword != r.PostFormValue("confirmPassword") {
		data.Error = "Passwords do not match"
		h.render(w, r, http.StatusOK, view.ScreenProfile, data)
		return
	}

	req := api.UpdateProfileRequest{
		Email:       data.Email,
		UseExtended: data.UseExtended,
	}
	if newPassword != "" {
		req.CurrentPassword = r.PostFormValue("currentPassword")
		req.NewPassword = newPassword
	}

	if err := h.client.UpdateProfile(r.Context(), req); err != nil {
		data.Error = userMessage(err, "Failed to update profile")
		h.render(w, r, http.StatusOK, view.ScreenProfile, data)
		return
	}

	h.sessions.RefreshProfile(r.Context())

	data.basePage = h.base("Profile")
	data.Success = "Profile updated successfully"
	h.render(w, r, http.StatusOK, view.ScreenProfile, data)
}
