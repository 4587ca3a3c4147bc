package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestDiff(t *testing.T) {
	two := 2

	tests := []struct {
		name     string
		old      *State
		new      *State
		wantDiff *StateDiff // nil means we expect no diff
	}{
		{
			name: "Initial Load (Old is Nil)",
			old:  nil,
			new: &State{
				UserName: strPtr("Alice"),
				Output:   []string{"Hello, Alice!"},
			},
			wantDiff: &StateDiff{
				Fields:   map[Field]any{FieldUserName: "Alice"},
				Appended: []string{"Hello, Alice!"},
			},
		},
		{
			name:     "No Changes",
			old:      &State{UserName: strPtr("Alice"), Output: []string{"a"}},
			new:      &State{UserName: strPtr("Alice"), Output: []string{"a"}},
			wantDiff: nil,
		},
		{
			name: "Field Modified",
			old:  &State{CurrentItemName: strPtr("Pineapple")},
			new:  &State{CurrentItemName: strPtr("Salami")},
			wantDiff: &StateDiff{
				Fields: map[Field]any{FieldItemName: "Salami"},
			},
		},
		{
			name: "Field Cleared",
			old:  &State{CurrentItemName: strPtr("Salami"), QuantityInput: strPtr("2"), CurrentQuantity: &two},
			new:  &State{},
			wantDiff: &StateDiff{
				Fields:   map[Field]any{FieldItemName: nil, FieldQuantity: nil},
				Quantity: &QuantityDelta{Value: nil},
			},
		},
		{
			name: "Transcript Append",
			old:  &State{Output: []string{"Hello, Alice!"}},
			new:  &State{Output: []string{"Hello, Alice!", "Order for Alice: 1x Salami"}},
			wantDiff: &StateDiff{
				Appended: []string{"Order for Alice: 1x Salami"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)

			if tt.wantDiff == nil {
				if got != nil {
					t.Errorf("Diff() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Diff() = nil, want %+v", tt.wantDiff)
			}
			if !reflect.DeepEqual(got.Fields, tt.wantDiff.Fields) {
				t.Errorf("Diff().Fields = %v, want %v", got.Fields, tt.wantDiff.Fields)
			}
			if !reflect.DeepEqual(got.Appended, tt.wantDiff.Appended) {
				t.Errorf("Diff().Appended = %v, want %v", got.Appended, tt.wantDiff.Appended)
			}
			if !reflect.DeepEqual(got.Quantity, tt.wantDiff.Quantity) {
				t.Errorf("Diff().Quantity = %v, want %v", got.Quantity, tt.wantDiff.Quantity)
			}
		})
	}
}

func TestDiff_Items(t *testing.T) {
	old := NewState("r1")
	_ = old.Items.Add("Salami", 1)

	next := old.Clone()
	_ = next.Items.Add("Salami", 1)
	_ = next.Items.Add("Margherita", 3)

	got := Diff(old, next)
	if got == nil {
		t.Fatal("expected diff, got nil")
	}
	want := map[string]int{"Salami": 2, "Margherita": 3}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Diff().Items = %v, want %v", got.Items, want)
	}
}

func TestDiffJSONSerialization(t *testing.T) {
	t.Run("Empty Sections Omitted", func(t *testing.T) {
		diff := Diff(&State{}, &State{UserName: strPtr("Bob")})
		if diff == nil {
			t.Fatal("Expected diff, got nil")
		}
		bytes, _ := json.Marshal(diff)
		if strings.Contains(string(bytes), `"appended"`) {
			t.Errorf("JSON should not contain 'appended' when empty, got: %s", string(bytes))
		}
	})

	t.Run("Cleared As Null", func(t *testing.T) {
		diff := Diff(&State{CurrentItemName: strPtr("Salami")}, &State{})
		if diff == nil {
			t.Fatal("Expected diff, got nil")
		}
		bytes, _ := json.Marshal(diff)
		if !strings.Contains(string(bytes), `"current_item_name":null`) {
			t.Errorf("JSON should contain null for cleared field, got: %s", string(bytes))
		}
	})
}
