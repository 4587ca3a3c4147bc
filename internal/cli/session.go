package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/orderbot"
	"github.com/aretw0/orderbot/internal/presentation/tui"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/observability"
	"github.com/aretw0/orderbot/pkg/ports"
	"github.com/aretw0/orderbot/pkg/runner"
)

// RunSession executes a single dialog run.
func RunSession(ctx context.Context, opts RunOptions) error {
	opts.setDefaults()
	cfg := opts.Config

	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug)
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	menu, err := menuService(cfg.Menu, opts.Offline)
	if err != nil {
		return fmt.Errorf("error creating menu service: %w", err)
	}

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = observability.DebugHooks(logger)
	}

	if cfg.MetricsAddr != "" {
		metrics := observability.NewMetrics(prometheus.NewRegistry())
		menu = metrics.InstrumentMenu(menu)
		hooks = hooks.Merge(metrics.Hooks())

		stop, err := serveMetrics(cfg.MetricsAddr, metrics.Handler(), logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	interactive := !cfg.JSON && isTerminal(opts.Stdout)

	var (
		handler     ports.IOHandler
		jsonHandler *runner.JSONHandler
	)
	if cfg.JSON {
		jsonHandler = runner.NewJSONHandler(opts.Stdin, opts.Stdout)
		handler = jsonHandler
	} else {
		var textOpts []runner.TextHandlerOption
		if interactive {
			tui.PrintBanner(opts.Stdout)
			printSystemMessage(opts.Stdout, "orderbot %s, %s flow", orderbot.Version, cfg.Flow)
			textOpts = append(textOpts, runner.WithLogStyle(tui.LogStyle()))
		}
		handler = runner.NewTextHandler(opts.Stdin, opts.Stdout, textOpts...)
	}

	eng, err := orderbot.New(
		orderbot.WithFlow(cfg.Flow),
		orderbot.WithMenu(menu),
		orderbot.WithIOHandler(handler),
		orderbot.WithLifecycleHooks(hooks),
		orderbot.WithLogger(logger),
		orderbot.WithMaxAttempts(cfg.MaxAttempts),
	)
	if err != nil {
		return fmt.Errorf("error initializing orderbot: %w", err)
	}

	initial := domain.NewState("")
	if opts.Name != "" {
		if err := initial.Set(domain.FieldUserName, opts.Name); err != nil {
			return err
		}
	}

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()

	final, runErr := eng.Run(sm.Context(), initial)
	if errors.Is(runErr, domain.ErrInputUnavailable) {
		// Ctrl+C may close stdin before the signal arrives.
		sm.CheckRace()
	}
	logger.Debug("Run finished", "run_id", final.RunID, "step", lastStep(final), "err", runErr)

	if jsonHandler != nil {
		if runErr != nil {
			_ = jsonHandler.Fail(runErr)
			return runErr
		}
		return jsonHandler.Final(final)
	}

	if runErr != nil {
		if sm.Interrupted() {
			fmt.Fprintln(opts.Stdout)
			printSystemMessage(opts.Stdout, "Interrupted at '%s' step.", lastStep(final))
		}
		return runErr
	}
	return printFinal(opts.Stdout, final, interactive)
}

// printFinal prints the final state: a rendered summary on a terminal,
// a "Final:" JSON dump otherwise.
func printFinal(w io.Writer, s *domain.State, interactive bool) error {
	if interactive {
		render := tui.NewRenderer()
		if out, err := render(tui.SummaryMarkdown(s)); err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding final state: %w", err)
	}
	_, err = fmt.Fprintf(w, "Final: %s\n", data)
	return err
}
