package runtime

import (
	"context"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
)

// Action is the work performed by a step. It may block on the I/O handler
// or on a network call, and mutates the state in place.
type Action func(ctx context.Context, io ports.IOHandler, state *domain.State) error

// Selector decides the next node from the current state.
type Selector func(ctx context.Context, io ports.IOHandler, state *domain.State) (domain.Target, error)

// StepSpec is one row of the declarative graph table:
// {StepID, action, edge kind, target-or-selector}.
type StepSpec struct {
	ID          domain.StepID
	Kind        domain.StepKind
	Description string
	Action      Action

	Edge domain.EdgeKind
	// Target is the destination of a fixed edge. It may be domain.End.
	Target domain.StepID
	// Selector drives a conditional edge.
	Selector     Selector
	SelectorName string
	// Branches declares the targets a selector may return.
	// When non-empty the executor refuses any other target.
	Branches []domain.StepID
}

// EntrySpec is the conditional edge leaving START.
type EntrySpec struct {
	Selector     Selector
	SelectorName string
	Branches     []domain.StepID
}

// Graph is a validated, immutable dialog graph.
type Graph struct {
	name     string
	entry    EntrySpec
	steps    map[domain.StepID]*StepSpec
	order    []domain.StepID
	warnings []string
}

// Compile validates the table and returns an executable graph.
// Any structural problem is reported as a *domain.GraphConfigError.
func Compile(name string, entry EntrySpec, specs []StepSpec) (*Graph, error) {
	problems, warnings := validateGraph(entry, specs)
	if len(problems) > 0 {
		return nil, &domain.GraphConfigError{Problems: problems}
	}

	g := &Graph{
		name:     name,
		entry:    entry,
		steps:    make(map[domain.StepID]*StepSpec, len(specs)),
		order:    make([]domain.StepID, 0, len(specs)),
		warnings: warnings,
	}
	for i := range specs {
		spec := specs[i]
		spec.Branches = append([]domain.StepID(nil), spec.Branches...)
		g.steps[spec.ID] = &spec
		g.order = append(g.order, spec.ID)
	}
	return g, nil
}

// Name returns the graph label.
func (g *Graph) Name() string { return g.name }

// Warnings returns non-fatal findings, such as steps unreachable from START.
func (g *Graph) Warnings() []string {
	return append([]string(nil), g.warnings...)
}

// Step returns the spec registered under id.
func (g *Graph) Step(id domain.StepID) (*StepSpec, bool) {
	s, ok := g.steps[id]
	return s, ok
}

// Nodes describes the graph for introspection, START first, in registration order.
func (g *Graph) Nodes() []domain.Node {
	nodes := make([]domain.Node, 0, len(g.order)+1)
	nodes = append(nodes, domain.Node{
		ID:       domain.Start,
		Kind:     domain.StepKindLogic,
		Edge:     domain.EdgeConditional,
		Targets:  append([]domain.StepID(nil), g.entry.Branches...),
		Selector: g.entry.SelectorName,
	})
	for _, id := range g.order {
		s := g.steps[id]
		n := domain.Node{
			ID:          s.ID,
			Kind:        s.Kind,
			Description: s.Description,
			Edge:        s.Edge,
		}
		switch s.Edge {
		case domain.EdgeFixed:
			n.Targets = []domain.StepID{s.Target}
		case domain.EdgeConditional:
			n.Targets = append([]domain.StepID(nil), s.Branches...)
			n.Selector = s.SelectorName
		}
		nodes = append(nodes, n)
	}
	return nodes
}
