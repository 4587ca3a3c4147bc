package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Plain", input: "Margherita", want: "Margherita"},
		{name: "Keeps Tabs And Newlines", input: "a\tb\nc\r", want: "a\tb\nc\r"},
		{name: "Strips ANSI Escape", input: "\x1b[31mred\x1b[0m", want: "[31mred[0m"},
		{name: "Strips NUL And BEL", input: "a\x00b\x07c", want: "abc"},
		{name: "Invalid UTF-8", input: "a\xffb", wantErr: ErrInvalidUTF8},
		{name: "Too Large", input: strings.Repeat("x", DefaultMaxInputSize+1), wantErr: ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitizeInput_EnvLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "3")
	if _, err := SanitizeInput("abcd"); !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
	t.Setenv(EnvMaxInputSize, "not-a-number")
	if _, err := SanitizeInput("abcd"); err != nil {
		t.Fatalf("invalid env value should fall back to default, got %v", err)
	}
}
