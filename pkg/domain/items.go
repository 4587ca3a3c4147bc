package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// OrderedItems maps item names to quantities and remembers insertion order.
// The zero value is ready to use.
type OrderedItems struct {
	names []string
	qty   map[string]int
}

// Add records quantity for name. Adding a name that is already present
// increases its quantity and keeps its original position.
func (o *OrderedItems) Add(name string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity for %q must be positive, got %d", name, quantity)
	}
	if o.qty == nil {
		o.qty = make(map[string]int)
	}
	if _, ok := o.qty[name]; !ok {
		o.names = append(o.names, name)
	}
	o.qty[name] += quantity
	return nil
}

// Quantity returns the quantity recorded for name.
func (o OrderedItems) Quantity(name string) (int, bool) {
	q, ok := o.qty[name]
	return q, ok
}

// Names returns item names in insertion order.
func (o OrderedItems) Names() []string {
	return append([]string(nil), o.names...)
}

// Len returns the number of distinct items.
func (o OrderedItems) Len() int {
	return len(o.names)
}

// All iterates name/quantity pairs in insertion order.
func (o OrderedItems) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, n := range o.names {
			if !yield(n, o.qty[n]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (o OrderedItems) Clone() OrderedItems {
	c := OrderedItems{names: append([]string(nil), o.names...)}
	if o.qty != nil {
		c.qty = make(map[string]int, len(o.qty))
		for k, v := range o.qty {
			c.qty[k] = v
		}
	}
	return c
}

// String renders "[2x Salami, 1x Margherita]".
func (o OrderedItems) String() string {
	parts := make([]string, 0, len(o.names))
	for name, q := range o.All() {
		parts = append(parts, fmt.Sprintf("%dx %s", q, name))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the items as a JSON object whose keys keep insertion order.
func (o OrderedItems) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", o.qty[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, preserving the key order found in data.
func (o *OrderedItems) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = OrderedItems{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("items: expected object, got %v", tok)
	}
	next := OrderedItems{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("items: expected string key, got %v", keyTok)
		}
		var q int
		if err := dec.Decode(&q); err != nil {
			return fmt.Errorf("items: quantity for %q: %w", name, err)
		}
		if err := next.Add(name, q); err != nil {
			return err
		}
	}
	*o = next
	return nil
}
