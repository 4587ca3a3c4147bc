package domain

// StepKind describes what a step does, for introspection and diagram shapes.
type StepKind string

const (
	// StepKindInput prompts the user and stores the answer (hard step).
	StepKindInput StepKind = "input"
	// StepKindOutput derives user-visible text from the state (soft step).
	StepKindOutput StepKind = "output"
	// StepKindLogic mutates the state without I/O (silent step).
	StepKindLogic StepKind = "logic"
)

// EdgeKind distinguishes fixed from selector-driven transitions.
type EdgeKind string

const (
	EdgeNone        EdgeKind = ""
	EdgeFixed       EdgeKind = "fixed"
	EdgeConditional EdgeKind = "conditional"
)

// Node is the read-only description of a step and its outgoing edge.
type Node struct {
	ID          StepID   `json:"id" yaml:"id"`
	Kind        StepKind `json:"kind" yaml:"kind"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	Edge EdgeKind `json:"edge" yaml:"edge"`
	// Targets lists the destinations the edge can produce.
	// A fixed edge has exactly one; a conditional edge lists the declared branches.
	Targets []StepID `json:"targets" yaml:"targets"`
	// Selector names the transition selector of a conditional edge.
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
}
