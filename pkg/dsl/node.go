package dsl

import (
	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/pkg/domain"
)

// NodeBuilder provides a fluent API for configuring a step.
type NodeBuilder struct {
	spec    runtime.StepSpec
	builder *Builder
}

// Ask marks the step as a collection step (it blocks on input).
func (n *NodeBuilder) Ask(description string) *NodeBuilder {
	n.spec.Kind = domain.StepKindInput
	n.spec.Description = description
	return n
}

// Emit marks the step as producing user-visible output.
func (n *NodeBuilder) Emit(description string) *NodeBuilder {
	n.spec.Kind = domain.StepKindOutput
	n.spec.Description = description
	return n
}

// Logic marks the step as pure state manipulation.
func (n *NodeBuilder) Logic(description string) *NodeBuilder {
	n.spec.Kind = domain.StepKindLogic
	n.spec.Description = description
	return n
}

// Do sets the action executed when the step is entered.
func (n *NodeBuilder) Do(action Action) *NodeBuilder {
	n.spec.Action = action
	return n
}

// Go sets a fixed edge to target. Any previous edge is replaced.
func (n *NodeBuilder) Go(target domain.StepID) *NodeBuilder {
	n.spec.Edge = domain.EdgeFixed
	n.spec.Target = target
	n.spec.Selector = nil
	n.spec.SelectorName = ""
	n.spec.Branches = nil
	return n
}

// Terminal is shorthand for a fixed edge to END.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	return n.Go(domain.End)
}

// Branch sets a conditional edge. The selector may only return one of branches.
func (n *NodeBuilder) Branch(name string, selector Selector, branches ...domain.StepID) *NodeBuilder {
	n.spec.Edge = domain.EdgeConditional
	n.spec.Target = ""
	n.spec.Selector = selector
	n.spec.SelectorName = name
	n.spec.Branches = branches
	return n
}

// Add continues the chain with another step of the same builder.
func (n *NodeBuilder) Add(id domain.StepID) *NodeBuilder {
	return n.builder.Add(id)
}
