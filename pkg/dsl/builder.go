package dsl

import (
	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	name  string
	entry runtime.EntrySpec
	order []domain.StepID
	nodes map[domain.StepID]*NodeBuilder
}

// New creates a new graph builder.
func New(name string) *Builder {
	return &Builder{
		name:  name,
		nodes: make(map[domain.StepID]*NodeBuilder),
	}
}

// Entry declares the conditional edge leaving START.
func (b *Builder) Entry(name string, selector Selector, branches ...domain.StepID) *Builder {
	b.entry = runtime.EntrySpec{
		Selector:     selector,
		SelectorName: name,
		Branches:     branches,
	}
	return b
}

// Add creates a new step in the graph.
// If the step already exists, it returns the existing builder.
func (b *Builder) Add(id domain.StepID) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		spec:    runtime.StepSpec{ID: id, Kind: domain.StepKindLogic},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the table into an executable graph.
func (b *Builder) Build() (*Graph, error) {
	specs := make([]runtime.StepSpec, 0, len(b.order))
	for _, id := range b.order {
		specs = append(specs, b.nodes[id].spec)
	}
	return runtime.Compile(b.name, b.entry, specs)
}
