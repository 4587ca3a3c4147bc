package domain

import (
	"fmt"
	"strings"
)

// Field names a text slot of the conversation state that a collection step can fill.
type Field string

const (
	FieldUserName Field = "user_name"
	FieldItemName Field = "current_item_name"
	FieldQuantity Field = "current_quantity"
	FieldAnother  Field = "another_answer"
)

// State is the conversation record accumulated during one run.
// It is owned by the executor for the duration of the run and handed by
// pointer to every step and selector.
type State struct {
	// RunID correlates log lines and metrics of a single run.
	RunID string `json:"run_id,omitempty"`

	UserName        *string `json:"user_name,omitempty"`
	CurrentItemName *string `json:"current_item_name,omitempty"`

	// QuantityInput is the raw answer to the quantity prompt.
	// CurrentQuantity is only set when QuantityInput parsed as a positive integer.
	QuantityInput   *string `json:"quantity_input,omitempty"`
	CurrentQuantity *int    `json:"current_quantity,omitempty"`

	// AnotherAnswer is the raw answer to "anything else?".
	AnotherAnswer *string `json:"another_answer,omitempty"`

	// Items holds the confirmed order lines in confirmation order.
	Items OrderedItems `json:"items"`

	// Output is the user-visible transcript. Append-only within a run.
	Output []string `json:"output"`

	// Rejections counts rejected answers per field in this run.
	Rejections map[Field]int `json:"rejections,omitempty"`

	// Retries counts rejected answers per field since its last accepted value,
	// i.e. within the current retry loop.
	Retries map[Field]int `json:"retries,omitempty"`

	// History tracks the steps visited, in order.
	History []string `json:"history,omitempty"`
}

// NewState creates an empty state for a run.
func NewState(runID string) *State {
	return &State{
		RunID:      runID,
		Output:     []string{},
		Rejections: make(map[Field]int),
		Retries:    make(map[Field]int),
	}
}

// Get returns the value of a text field and whether it is set.
func (s *State) Get(f Field) (string, bool) {
	var p *string
	switch f {
	case FieldUserName:
		p = s.UserName
	case FieldItemName:
		p = s.CurrentItemName
	case FieldQuantity:
		p = s.QuantityInput
	case FieldAnother:
		p = s.AnotherAnswer
	default:
		return "", false
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set stores value into a text field.
func (s *State) Set(f Field, value string) error {
	v := value
	switch f {
	case FieldUserName:
		s.UserName = &v
	case FieldItemName:
		s.CurrentItemName = &v
	case FieldQuantity:
		s.QuantityInput = &v
	case FieldAnother:
		s.AnotherAnswer = &v
	default:
		return fmt.Errorf("unknown state field %q", f)
	}
	return nil
}

// Clear unsets a text field.
func (s *State) Clear(f Field) {
	switch f {
	case FieldUserName:
		s.UserName = nil
	case FieldItemName:
		s.CurrentItemName = nil
	case FieldQuantity:
		s.QuantityInput = nil
		s.CurrentQuantity = nil
	case FieldAnother:
		s.AnotherAnswer = nil
	}
}

// Append adds a line to the user-visible transcript.
func (s *State) Append(line string) {
	s.Output = append(s.Output, line)
}

// Reject records one more rejected answer for f and returns its attempt
// number within the current retry loop.
func (s *State) Reject(f Field) int {
	if s.Rejections == nil {
		s.Rejections = make(map[Field]int)
	}
	if s.Retries == nil {
		s.Retries = make(map[Field]int)
	}
	s.Rejections[f]++
	s.Retries[f]++
	return s.Retries[f]
}

// Accept closes the retry loop of f and returns the attempt number of the
// accepted answer. The run-wide Rejections total is kept.
func (s *State) Accept(f Field) int {
	attempt := s.Retries[f] + 1
	delete(s.Retries, f)
	return attempt
}

// Clone returns a deep copy, used to compute diffs around a step.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.UserName = clonePtr(s.UserName)
	next.CurrentItemName = clonePtr(s.CurrentItemName)
	next.QuantityInput = clonePtr(s.QuantityInput)
	next.CurrentQuantity = clonePtr(s.CurrentQuantity)
	next.AnotherAnswer = clonePtr(s.AnotherAnswer)
	next.Items = s.Items.Clone()
	next.Output = append([]string(nil), s.Output...)
	next.History = append([]string(nil), s.History...)
	next.Rejections = make(map[Field]int, len(s.Rejections))
	for k, v := range s.Rejections {
		next.Rejections[k] = v
	}
	next.Retries = make(map[Field]int, len(s.Retries))
	for k, v := range s.Retries {
		next.Retries[k] = v
	}
	return &next
}

// String renders a compact one-line view for logs.
func (s *State) String() string {
	var b strings.Builder
	b.WriteString("{")
	if v, ok := s.Get(FieldUserName); ok {
		fmt.Fprintf(&b, "user_name=%q ", v)
	}
	if v, ok := s.Get(FieldItemName); ok {
		fmt.Fprintf(&b, "current_item_name=%q ", v)
	}
	fmt.Fprintf(&b, "items=%s output=%d}", s.Items.String(), len(s.Output))
	return b.String()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
