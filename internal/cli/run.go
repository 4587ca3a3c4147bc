package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/orderbot/internal/config"
	"github.com/aretw0/orderbot/internal/flow"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config config.Config
	Debug  bool
	// Offline validates against the built-in menu when no menu file is configured.
	Offline bool
	// Name presets the user name, skipping the name question.
	Name string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Execute handles the 'run' command logic.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.setDefaults()

	if _, err := flow.ParseVariant(opts.Config.Flow); err != nil {
		return fmt.Errorf("error selecting flow: %w", err)
	}
	if opts.Config.MaxAttempts < 0 {
		return fmt.Errorf("--max-attempts must not be negative, got %d", opts.Config.MaxAttempts)
	}

	return RunSession(ctx, opts)
}
