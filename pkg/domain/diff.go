package domain

// StateDiff represents the changes a step made to the state.
// It is designed to be serialized to JSON for debug logs.
type StateDiff struct {
	// Fields contains only changed text fields. Cleared fields map to nil.
	Fields map[Field]any `json:"fields,omitempty"`

	// Quantity is set when the parsed quantity changed.
	Quantity *QuantityDelta `json:"quantity,omitempty"`

	// Items contains names whose quantity changed, with the new quantity.
	Items map[string]int `json:"items,omitempty"`

	// Appended contains *new* transcript lines.
	Appended []string `json:"appended,omitempty"`
}

// QuantityDelta wraps the new parsed quantity (nil when cleared or unparsable).
type QuantityDelta struct {
	Value *int `json:"value"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState.
// It returns nil when nothing changed.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}
	if oldState == nil {
		oldState = &State{}
	}

	diff := &StateDiff{}

	// 1. Text fields
	for _, f := range []Field{FieldUserName, FieldItemName, FieldQuantity, FieldAnother} {
		oldVal, oldOK := oldState.Get(f)
		newVal, newOK := newState.Get(f)
		switch {
		case newOK && (!oldOK || oldVal != newVal):
			if diff.Fields == nil {
				diff.Fields = make(map[Field]any)
			}
			diff.Fields[f] = newVal
		case oldOK && !newOK:
			if diff.Fields == nil {
				diff.Fields = make(map[Field]any)
			}
			diff.Fields[f] = nil
		}
	}

	// 2. Parsed quantity
	if !equalPtr(oldState.CurrentQuantity, newState.CurrentQuantity) {
		diff.Quantity = &QuantityDelta{Value: newState.CurrentQuantity}
	}

	// 3. Items
	for name, q := range newState.Items.All() {
		if old, ok := oldState.Items.Quantity(name); !ok || old != q {
			if diff.Items == nil {
				diff.Items = make(map[string]int)
			}
			diff.Items[name] = q
		}
	}

	// 4. Transcript, assumed append-only
	if len(newState.Output) > len(oldState.Output) {
		diff.Appended = append([]string(nil), newState.Output[len(oldState.Output):]...)
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return len(d.Fields) == 0 &&
		d.Quantity == nil &&
		len(d.Items) == 0 &&
		len(d.Appended) == 0
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
