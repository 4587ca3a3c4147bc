package orderbot

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/orderbot/internal/flow"
	"github.com/aretw0/orderbot/internal/logging"
	"github.com/aretw0/orderbot/internal/runtime"
	menuhttp "github.com/aretw0/orderbot/pkg/adapters/http"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/dsl"
	"github.com/aretw0/orderbot/pkg/ports"
	"github.com/aretw0/orderbot/pkg/runner"
)

// Built-in flow variants.
const (
	FlowPizza = string(flow.VariantPizza)
	FlowOrder = string(flow.VariantOrder)
)

// Engine is the main entry point for running the order dialog.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	graph       *dsl.Graph
	flow        flow.Variant
	flowName    string
	menu        ports.MenuService
	io          ports.IOHandler
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	maxAttempts int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithFlow selects a built-in flow variant by name (pizza or order).
func WithFlow(name string) Option {
	return func(e *Engine) {
		e.flowName = name
	}
}

// WithGraph runs a graph built with the dsl package instead of a built-in flow.
// The graph brings its own steps, so WithFlow, WithMenu and WithMaxAttempts
// do not apply to it.
func WithGraph(g *dsl.Graph) Option {
	return func(e *Engine) {
		e.graph = g
	}
}

// WithMenu sets the service used to validate item names.
// Defaults to the HTTP menu client pointed at the public pizza API.
func WithMenu(menu ports.MenuService) Option {
	return func(e *Engine) {
		e.menu = menu
	}
}

// WithIOHandler sets the console steps prompt and log through.
// Defaults to a TextHandler on stdin/stdout.
func WithIOHandler(handler ports.IOHandler) Option {
	return func(e *Engine) {
		e.io = handler
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxAttempts bounds rejected answers per field. Zero (the default) retries forever.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		e.maxAttempts = n
	}
}

// New compiles the selected flow and binds it to its collaborators.
// Graph problems are reported here, before any step runs.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		flowName: FlowPizza,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must not be negative, got %d", eng.maxAttempts)
	}
	if eng.io == nil {
		eng.io = runner.NewTextHandler(os.Stdin, os.Stdout)
	}

	graph := eng.graph
	if graph == nil {
		variant, err := flow.ParseVariant(eng.flowName)
		if err != nil {
			return nil, &domain.GraphConfigError{Problems: []string{err.Error()}}
		}
		eng.flow = variant

		if eng.menu == nil {
			client, err := menuhttp.NewMenuClient(menuhttp.DefaultMenuURL)
			if err != nil {
				return nil, fmt.Errorf("error creating menu client: %w", err)
			}
			eng.menu = client
		}

		graph, err = flow.Build(variant, flow.Deps{
			Menu:        eng.menu,
			Hooks:       eng.hooks,
			MaxAttempts: eng.maxAttempts,
		})
		if err != nil {
			return nil, err
		}
	}

	var err error
	eng.runtime, err = runtime.NewEngine(graph, eng.io,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	if err != nil {
		return nil, err
	}
	return eng, nil
}

// Run drives one dialog from START to END. A nil initial state starts empty;
// a preset user name skips the name question.
// The returned state is the accumulated state, also when err is not nil.
func (e *Engine) Run(ctx context.Context, initial *domain.State) (*domain.State, error) {
	return e.runtime.Run(ctx, initial)
}

// Inspect returns the full graph definition for visualization or introspection tools.
func (e *Engine) Inspect() []domain.Node {
	return e.runtime.Inspect()
}

// Warnings lists non-fatal graph findings, such as unreachable steps.
func (e *Engine) Warnings() []string {
	return e.runtime.Graph().Warnings()
}

// Flow returns the name of the compiled flow: the variant, or the graph
// name for a graph given with WithGraph.
func (e *Engine) Flow() string {
	if e.graph != nil {
		return e.graph.Name()
	}
	return string(e.flow)
}
