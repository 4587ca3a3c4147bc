package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a menu over HTTP in the same shape as the public pizza API.
type Server struct {
	Menu   ports.MenuService
	Logger *slog.Logger
}

// HandlerOption configures NewMenuHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	metrics http.Handler
	logger  *slog.Logger
}

// WithMetricsHandler mounts h (usually promhttp) under /metrics.
func WithMetricsHandler(h http.Handler) HandlerOption {
	return func(c *handlerConfig) { c.metrics = h }
}

// WithServerLogger sets the logger used for request failures.
func WithServerLogger(l *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewMenuHandler creates the HTTP handler for a menu.
// Routes: GET /menu (alias /pizza), GET /health and, optionally, GET /metrics.
func NewMenuHandler(menu ports.MenuService, opts ...HandlerOption) http.Handler {
	cfg := handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	server := &Server{Menu: menu, Logger: cfg.logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/menu", server.GetMenu)
	r.Get("/pizza", server.GetMenu)
	r.Get("/health", server.GetHealth)
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetMenu handles GET /menu.
func (s *Server) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.Menu.ListItems(r.Context())
	if err != nil {
		http.Error(w, "menu unavailable", http.StatusInternalServerError)
		s.Logger.Error("GetMenu failed", "error", err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		s.Logger.Error("GetMenu response encode failed", "error", err)
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
