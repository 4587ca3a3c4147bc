package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	menuhttp "github.com/aretw0/orderbot/pkg/adapters/http"
	"github.com/aretw0/orderbot/pkg/adapters/memory"
	"github.com/aretw0/orderbot/pkg/observability"
	"github.com/aretw0/orderbot/pkg/runner"
)

// MenuServeOptions configures the local menu API.
type MenuServeOptions struct {
	Port string
	// File is a YAML menu. Empty serves the built-in menu.
	File  string
	Debug bool

	Stdout io.Writer
	Stderr io.Writer
}

// NewMenuServer builds the menu API handler: the menu, health and metrics routes.
func NewMenuServer(file string, logger *slog.Logger) (http.Handler, error) {
	menu := memory.DefaultMenu()
	if file != "" {
		loaded, err := memory.LoadMenuFile(file)
		if err != nil {
			return nil, err
		}
		menu = loaded
	}

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return menuhttp.NewMenuHandler(
		metrics.InstrumentMenu(menu),
		menuhttp.WithMetricsHandler(metrics.Handler()),
		menuhttp.WithServerLogger(logger),
	), nil
}

// ServeMenu serves the menu API until ctx is cancelled or a signal arrives,
// then shuts down gracefully.
func ServeMenu(ctx context.Context, opts MenuServeOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger, err := createLogger(opts.Stderr, "info", opts.Debug)
	if err != nil {
		return err
	}

	handler, err := NewMenuServer(opts.File, logger)
	if err != nil {
		return fmt.Errorf("error loading menu: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           handler,
		ReadHeaderTimeout: shutdownTimeout,
	}

	serverErrors := make(chan error, 1)
	fmt.Fprintf(opts.Stdout, "Starting menu server on %s\n", srv.Addr)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sm.Context().Done():
		fmt.Fprintln(opts.Stdout, "\nStart shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(opts.Stdout, "Graceful shutdown did not complete in %v: %v\n", shutdownTimeout, err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Fprintln(opts.Stdout, "Menu server stopped gracefully")
		return nil
	}
}
