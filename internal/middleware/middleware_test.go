package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Error("expected a generated request ID in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != captured {
		t.Errorf("expected response header %q to match context ID %q", got, captured)
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	t.Parallel()

	var captured string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if captured != "client-supplied-id" {
		t.Errorf("expected incoming ID to be preserved, got %q", captured)
	}
}

func TestLogger_LevelsByStatusAndNoTokenLeak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, "INFO"},
		{"client error logs warn", http.StatusNotFound, "WARN"},
		{"server error logs error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req.Header.Set("Authorization", "Bearer super-secret-token")

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log line: %v", err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("expected level %s, got %v", tt.wantLevel, entry["level"])
			}
			if entry["status_code"] != float64(tt.status) {
				t.Errorf("expected status %d, got %v", tt.status, entry["status_code"])
			}
			if strings.Contains(buf.String(), "super-secret-token") {
				t.Error("request log must never contain header values")
			}
		})
	}
}

func TestSecurity_Headers(t *testing.T) {
	t.Parallel()

	h := Security(DefaultSecurityConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headers := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Cache-Control":             "no-store",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("expected %s: %q, got %q", name, want, got)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "default-src 'none'") {
		t.Errorf("expected a restrictive CSP, got %q", csp)
	}
}

func TestSecurity_NoHSTSInDevelopment(t *testing.T) {
	t.Parallel()

	cfg := DefaultSecurityConfig()
	cfg.IsDevelopment = true

	h := Security(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("expected no HSTS header in development, got %q", got)
	}
}

func TestMaxBodySize_RejectsOversizedDeclaredBody(t *testing.T) {
	t.Parallel()

	h := MaxBodySize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for an oversized body")
	}))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(strings.Repeat("a", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}

func TestMaxBodySize_AllowsSmallBody(t *testing.T) {
	t.Parallel()

	var called bool
	h := MaxBodySize(1024)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a@b.co"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Error("expected the handler to run")
	}
}

func TestRecoverer_PanicBecomes500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "template exploded") {
		t.Error("expected the panic value in the log")
	}
}
