package ports

import "context"

// IOHandler is the only channel between the engine and the user-facing terminal.
type IOHandler interface {
	// Prompt shows text and blocks until a line of input is available.
	// It returns an error if the input source is closed or the context is done.
	Prompt(ctx context.Context, text string) (string, error)

	// Log writes a one-way diagnostic or echo line.
	Log(ctx context.Context, text string) error
}
