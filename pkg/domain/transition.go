package domain

import "fmt"

// StepID identifies a step in the dialog graph.
type StepID string

// Sentinel markers bounding a run. They are not steps and cannot be registered as such.
const (
	Start StepID = "__start__"
	End   StepID = "__end__"
)

// IsSentinel reports whether id is one of the reserved START/END markers.
func (id StepID) IsSentinel() bool {
	return id == Start || id == End
}

// TargetKind discriminates the Target variant.
type TargetKind int

const (
	// TargetInvalid is the zero value. The executor refuses to route on it.
	TargetInvalid TargetKind = iota
	// TargetGoto moves execution to a named step.
	TargetGoto
	// TargetEnd terminates the run.
	TargetEnd
)

// Target is the result of a transition decision: either Goto(step) or Terminate().
type Target struct {
	kind TargetKind
	step StepID
}

// Goto routes to the given step.
func Goto(id StepID) Target {
	return Target{kind: TargetGoto, step: id}
}

// Terminate routes to END.
func Terminate() Target {
	return Target{kind: TargetEnd}
}

// Kind returns the variant tag.
func (t Target) Kind() TargetKind { return t.kind }

// Step returns the destination step. Only meaningful for TargetGoto.
func (t Target) Step() StepID { return t.step }

// IsEnd reports whether t terminates the run.
func (t Target) IsEnd() bool { return t.kind == TargetEnd }

// Node returns the graph node this target points at, with END for termination.
func (t Target) Node() StepID {
	if t.kind == TargetEnd {
		return End
	}
	return t.step
}

func (t Target) String() string {
	switch t.kind {
	case TargetGoto:
		return fmt.Sprintf("goto(%s)", t.step)
	case TargetEnd:
		return "end"
	default:
		return "invalid"
	}
}
