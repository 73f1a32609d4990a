package guard

import (
	"log/slog"
	"net/http"

	"github.com/phishdirectory/dashboard/internal/session"
)

// Paths the guard redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Sessions is the slice of the session store the guard observes.
type Sessions interface {
	Snapshot() session.Snapshot
}

// loadingPage is rendered while the session is still resolving. It
// refreshes itself instead of flashing protected content.
const loadingPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><meta http-equiv="refresh" content="1"><title>Loading…</title></head>
<body><p>Loading…</p></body>
</html>`

// Middleware returns a chi middleware enforcing the guard table for the
// given route class. The guard re-evaluates on every request, so it
// tracks session changes without any notification wiring.
func Middleware(sessions Sessions, route RouteClass, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := StateOf(sessions.Snapshot())
			decision := Evaluate(state, route)

			switch decision {
			case Allow:
				next.ServeHTTP(w, r)
			case Wait:
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Header().Set("Cache-Control", "no-store")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(loadingPage))
			case RedirectToLogin:
				logger.Info("guard redirect",
					slog.String("path", r.URL.Path),
					slog.String("state", state.String()),
					slog.String("decision", decision.String()),
				)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			case RedirectToHome:
				logger.Info("guard redirect",
					slog.String("path", r.URL.Path),
					slog.String("state", state.String()),
					slog.String("decision", decision.String()),
				)
				http.Redirect(w, r, HomePath, http.StatusSeeOther)
			}
		})
	}
}

// Protect guards routes that require an authenticated session.
func Protect(sessions Sessions, logger *slog.Logger) func(http.Handler) http.Handler {
	return Middleware(sessions, RouteProtected, logger)
}

// AnonymousOnly guards the login and signup screens.
func AnonymousOnly(sessions Sessions, logger *slog.Logger) func(http.Handler) http.Handler {
	return Middleware(sessions, RouteAuthOnly, logger)
}
