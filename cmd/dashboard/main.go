// Package main is the entrypoint for the phish.directory dashboard.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/config"
	"github.com/phishdirectory/dashboard/internal/guard"
	"github.com/phishdirectory/dashboard/internal/handler"
	"github.com/phishdirectory/dashboard/internal/metrics"
	"github.com/phishdirectory/dashboard/internal/middleware"
	"github.com/phishdirectory/dashboard/internal/server"
	"github.com/phishdirectory/dashboard/internal/session"
	"github.com/phishdirectory/dashboard/internal/view"
)

func main() {
	ctx := context.Background()

	// Load .env in development; missing files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Token store selection: file by default, Redis for containerized runs.
	var (
		tokens     session.TokenStore
		storePing  handler.Pinger
		redisStore *session.RedisTokenStore
	)
	switch cfg.SessionStore {
	case "redis":
		redisStore, err = session.NewRedisTokenStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		tokens = redisStore
		storePing = redisStore
		logger.Info("connected to Redis token store")
	default:
		fileStore, err := session.NewFileTokenStore(cfg.TokenFile)
		if err != nil {
			logger.Error("failed to initialize token store", "error", err)
			os.Exit(1)
		}
		tokens = fileStore
		logger.Info("using file token store", "path", fileStore.Path())
	}

	renderer, err := view.New()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewNoop()
	apiBaseURL := cfg.ResolveAPIBaseURL()
	client := api.NewClientWithTimeout(apiBaseURL, tokens, recorder, cfg.APITimeout)
	sessions := session.New(client, tokens, recorder, logger)

	// Resolve any persisted session in the background; the guard keeps
	// screens on the loading page until this settles.
	go sessions.Bootstrap(ctx)

	h := handler.New(sessions, client, renderer, recorder, logger, cfg.IsDevelopment())
	healthHandler := handler.NewHealthHandler(storePing)

	r := setupRouter(h, healthHandler, sessions, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	if redisStore != nil {
		srv.OnShutdown("redis token store", func(ctx context.Context) error {
			return redisStore.Close()
		})
	}

	logger.Info("starting dashboard",
		"port", cfg.AppPort,
		"api_base_url", apiBaseURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all screens and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	sessions *session.Store,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Health endpoints (no guard)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Auth screens: anonymous visitors only
	r.Group(func(r chi.Router) {
		r.Use(guard.AnonymousOnly(sessions, logger))
		r.Get("/login", h.LoginPage)
		r.Post("/login", h.LoginSubmit)
		r.Get("/signup", h.SignupPage)
		r.Post("/signup", h.SignupSubmit)
	})

	// Dashboard screens: authenticated sessions only
	r.Group(func(r chi.Router) {
		r.Use(guard.Protect(sessions, logger))

		r.Get("/", h.Home)
		r.Post("/logout", h.Logout)
		r.Get("/domain-check", h.DomainCheck)
		r.Get("/email-check", h.EmailCheck)
		r.Get("/profile", h.ProfilePage)
		r.Post("/profile", h.ProfileSubmit)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", h.AdminUsers)
			r.Post("/users", h.AdminUserCreate)
			r.Post("/users/edit", h.AdminUserUpdate)
			r.Post("/users/{id}/delete", h.AdminUserDelete)

			r.Get("/domains", h.AdminDomains)
			r.Post("/domains", h.AdminDomainCreate)
			r.Post("/domains/edit", h.AdminDomainUpdate)
			r.Post("/domains/{id}/delete", h.AdminDomainDelete)

			r.Get("/metrics", h.AdminMetrics)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
