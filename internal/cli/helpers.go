package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/term"

	"github.com/aretw0/orderbot/internal/config"
	"github.com/aretw0/orderbot/internal/logging"
	menuhttp "github.com/aretw0/orderbot/pkg/adapters/http"
	"github.com/aretw0/orderbot/pkg/adapters/memory"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
)

const shutdownTimeout = 5 * time.Second

// createLogger configures the application logger.
// In debug mode everything down to Debug is written, otherwise the configured level.
// It writes to w (usually Stderr) to keep Stdout for the dialog.
func createLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// menuService picks the validation backend: a menu file, the built-in
// menu when offline, or the HTTP menu API.
func menuService(cfg config.Menu, offline bool) (ports.MenuService, error) {
	if cfg.File != "" {
		m, err := memory.LoadMenuFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	if offline {
		return memory.DefaultMenu(), nil
	}

	client, err := menuhttp.NewMenuClient(cfg.URL, menuhttp.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// serveMetrics exposes h on addr under /metrics until the returned stop func is called.
func serveMetrics(addr string, h http.Handler, logger *slog.Logger) (func(), error) {
	r := chi.NewRouter()
	r.Handle("/metrics", h)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: r, ReadHeaderTimeout: shutdownTimeout}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	logger.Info("Metrics server listening", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
		}
	}, nil
}

// lastStep names the step a run stopped at.
func lastStep(s *domain.State) string {
	if s == nil || len(s.History) == 0 {
		return string(domain.Start)
	}
	return s.History[len(s.History)-1]
}
