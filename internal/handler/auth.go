package handler

import (
	"net/http"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/view"
)

type loginPage struct {
	basePage
	Email  string
	Notice string
}

// LoginPage handles GET /login.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := loginPage{basePage: h.base("Sign in")}
	if r.URL.Query().Get("signup") == "success" {
		data.Notice = "Account created. Please sign in."
	}
	h.render(w, r, http.StatusOK, view.ScreenLogin, data)
}

// LoginSubmit handles POST /login. Failures re-render the screen with
// an inline alert; the session store owns message normalization.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	result := h.sessions.Login(r.Context(), email, password)
	if result.Success {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginPage{basePage: h.base("Sign in"), Email: email}
	data.Error = result.Error
	h.render(w, r, http.StatusOK, view.ScreenLogin, data)
}

type signupPage struct {
	basePage
	FirstName string
	LastName  string
	Email     string
}

// SignupPage handles GET /signup.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	data := signupPage{basePage: h.base("Sign up")}
	h.render(w, r, http.StatusOK, view.ScreenSignup, data)
}

// SignupSubmit handles POST /signup. On success the visitor lands on
// the login screen with a confirmation notice.
func (h *Handler) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	data := signupPage{
		basePage:  h.base("Sign up"),
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
	}

	password := r.PostFormValue("password")
	if password != r.PostFormValue("confirmPassword") {
		data.Error = "Passwords do not match"
		h.render(w, r, http.StatusOK, view.ScreenSignup, data)
		return
	}

	req := api.SignupRequest{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  password,
	}
	if err := h.client.Signup(r.Context(), req); err != nil {
		data.Error = userMessage(err, "Failed to create account")
		h.render(w, r, http.StatusOK, view.ScreenSignup, data)
		return
	}

	http.Redirect(w, r, "/login?signup=success", http.StatusSeeOther)
}

// Logout handles POST /logout. Clearing an already-empty session is a
// no-op, so repeated submissions are harmless.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
