package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/metrics"
	"github.com/phishdirectory/dashboard/internal/session"
	"github.com/phishdirectory/dashboard/internal/view"
)

// memTokens is an in-memory token store for handler tests.
type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokens) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTokens) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type testApp struct {
	handler  *Handler
	sessions *session.Store
	tokens   *memTokens
	recorder *metrics.InMemoryRecorder
}

// newTestApp wires a Handler against a fake backend API. A non-empty
// token is persisted before the session bootstraps, so the backend mux
// decides whether it resolves to a user.
func newTestApp(t *testing.T, backend http.Handler, token string) *testApp {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	tokens := &memTokens{token: token}
	recorder := metrics.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := api.NewClient(srv.URL, tokens, recorder)
	sessions := session.New(client, tokens, recorder, logger)
	sessions.Bootstrap(context.Background())

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	return &testApp{
		handler:  New(sessions, client, renderer, recorder, logger, false),
		sessions: sessions,
		tokens:   tokens,
		recorder: recorder,
	}
}

func profileResponse(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "u1",
			"email": "user@example.com",
			"role":  role,
		})
	}
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSubmit_InvalidCredentialsRendered(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"no user with that email"}`))
	})

	app := newTestApp(t, mux, "")

	rec := httptest.NewRecorder()
	app.handler.LoginSubmit(rec, formRequest("/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"wrong"},
	}))

	if rec.Code != http.StatusOK {
		t.Errorf("expected the login screen to re-render with 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, session.MsgInvalidCredentials) {
		t.Errorf("expected the normalized credential message, body: %s", body)
	}
	if strings.Contains(body, "no user with that email") {
		t.Error("the raw backend message must not reach the screen")
	}
	if !strings.Contains(body, `value="user@example.com"`) {
		t.Error("expected the email field to stay filled")
	}
}

func TestLoginSubmit_SuccessRedirectsHome(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	})
	mux.HandleFunc("GET /user/me", profileResponse("user"))

	app := newTestApp(t, mux, "")

	rec := httptest.NewRecorder()
	app.handler.LoginSubmit(rec, formRequest("/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"hunter2"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to home, got %q", loc)
	}
	if tok, _ := app.tokens.Token(context.Background()); tok != "issued-token" {
		t.Errorf("expected the issued token to be persisted, got %q", tok)
	}
}

func TestSignupSubmit_PasswordMismatch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/signup", func(w http.ResponseWriter, r *http.Request) {
		t.Error("signup must not reach the backend on a password mismatch")
	})

	app := newTestApp(t, mux, "")

	rec := httptest.NewRecorder()
	app.handler.SignupSubmit(rec, formRequest("/signup", url.Values{
		"email":           {"new@example.com"},
		"password":        {"one"},
		"confirmPassword": {"two"},
	}))

	if !strings.Contains(rec.Body.String(), "Passwords do not match") {
		t.Error("expected the mismatch message on the screen")
	}
}

func TestDomainCheck_PhishingVerdict(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("user"))
	mux.HandleFunc("GET /domain/check", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "evil.example" {
			t.Errorf("unexpected domain query %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"isPhishing": true})
	})

	app := newTestApp(t, mux, "tok")

	rec := httptest.NewRecorder()
	app.handler.DomainCheck(rec, httptest.NewRequest(http.MethodGet, "/domain-check?domain=evil.example", nil))

	if !strings.Contains(rec.Body.String(), "Phishing Detected") {
		t.Error("expected the phishing verdict on the screen")
	}
	if snap := app.recorder.Snapshot(); snap.DomainChecksPhishing != 1 {
		t.Errorf("expected 1 phishing verdict recorded, got %d", snap.DomainChecksPhishing)
	}
}

func TestDomainCheck_NoQueryRendersFormOnly(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("user"))
	mux.HandleFunc("GET /domain/check", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no lookup must run without a query")
	})

	app := newTestApp(t, mux, "tok")

	rec := httptest.NewRecorder()
	app.handler.DomainCheck(rec, httptest.NewRequest(http.MethodGet, "/domain-check", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAdminUsers_AccessDeniedForNonAdmin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("user"))
	mux.HandleFunc("GET /admin/user", func(w http.ResponseWriter, r *http.Request) {
		t.Error("the user list must not be fetched for a non-admin")
	})

	app := newTestApp(t, mux, "tok")

	rec := httptest.NewRecorder()
	app.handler.AdminUsers(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Access Denied") {
		t.Error("expected the access denied alert")
	}
}

func TestAdminUsers_ListsForAdmin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("admin"))
	mux.HandleFunc("GET /admin/user", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u2","email":"other@example.com","role":"user","createdAt":"2026-08-01T00:00:00Z"}]`))
	})

	app := newTestApp(t, mux, "tok")

	rec := httptest.NewRecorder()
	app.handler.AdminUsers(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "other@example.com") {
		t.Error("expected the user row on the screen")
	}
}

func TestAdminUserDelete_RedirectsToList(t *testing.T) {
	t.Parallel()

	var deleted string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("admin"))
	mux.HandleFunc("DELETE /admin/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusOK)
	})

	app := newTestApp(t, mux, "tok")

	r := chi.NewRouter()
	r.Post("/admin/users/{id}/delete", app.handler.AdminUserDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/users/u2/delete", nil))

	if deleted != "u2" {
		t.Errorf("expected delete for u2, got %q", deleted)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/users" {
		t.Errorf("expected redirect to the list, got %q", loc)
	}
}

func TestHome_MetricsFailureDegradesToAlert(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", profileResponse("user"))
	mux.HandleFunc("GET /misc/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"metrics store offline"}`))
	})

	app := newTestApp(t, mux, "tok")

	rec := httptest.NewRecorder()
	app.handler.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected the screen to still render with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "metrics store offline") {
		t.Error("expected the backend message as an inline alert")
	}
}

func TestNotFound_RendersScreen(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, http.NewServeMux(), "")

	rec := httptest.NewRecorder()
	app.handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
