// Package handler provides HTTP request handlers for the dashboard
// screens. Handlers hold no business logic: they parse forms, call the
// backend through the API client or session store, and render a screen.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/metrics"
	"github.com/phishdirectory/dashboard/internal/middleware"
	"github.com/phishdirectory/dashboard/internal/model"
	"github.com/phishdirectory/dashboard/internal/session"
	"github.com/phishdirectory/dashboard/internal/view"
)

// Handler wraps application dependencies for the screen handlers.
type Handler struct {
	sessions  *session.Store
	client    *api.Client
	view      *view.Renderer
	recorder  metrics.Recorder
	logger    *slog.Logger
	devBanner bool
}

// New creates a new Handler instance.
func New(sessions *session.Store, client *api.Client, renderer *view.Renderer, recorder metrics.Recorder, logger *slog.Logger, devBanner bool) *Handler {
	return &Handler{
		sessions:  sessions,
		client:    client,
		view:      renderer,
		recorder:  recorder,
		logger:    logger,
		devBanner: devBanner,
	}
}

// basePage holds the fields every screen shares.
type basePage struct {
	Title     string
	User      *model.UserProfile
	DevBanner bool
	Error     string
	Success   string
}

// base assembles the shared page fields for the current session.
func (h *Handler) base(title string) basePage {
	return basePage{
		Title:     title,
		User:      h.sessions.User(),
		DevBanner: h.devBanner,
	}
}

// render writes a screen. Render failures are logged, not surfaced; by
// then part of the response may already be written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, screen string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.view.Render(w, screen, data); err != nil {
		h.logger.Error("render failed",
			slog.String("screen", screen),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
}

// userMessage converts a failed backend call into an inline alert
// message. Backend-provided messages win; everything else collapses to
// the fallback so raw transport or decode errors never reach a screen.
func userMessage(err error, fallback string) string {
	if errors.Is(err, api.ErrAuthRequired) {
		return "Authentication required"
	}
	if apiErr, ok := api.AsError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := h.base("Not found")
	h.render(w, r, http.StatusNotFound, view.ScreenNotFound, data)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}
