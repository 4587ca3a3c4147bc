package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGraphConfig matches any *GraphConfigError via errors.Is.
var ErrGraphConfig = errors.New("graph configuration error")

// ErrInputUnavailable is returned when the input source closed or failed mid-prompt.
var ErrInputUnavailable = errors.New("input unavailable")

// ErrValidationServiceUnavailable matches any *ValidationServiceError via errors.Is.
var ErrValidationServiceUnavailable = errors.New("validation service unavailable")

// ErrTooManyAttempts is returned when a configured attempt limit for a field is exceeded.
// Without a limit the retry loop is unbounded and this error never occurs.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// GraphConfigError reports a malformed graph detected at construction time.
type GraphConfigError struct {
	Problems []string
}

func (e *GraphConfigError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid graph: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid graph: %d problems:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

func (e *GraphConfigError) Is(target error) bool {
	return target == ErrGraphConfig
}

// ValidationServiceError reports a failed call to the external validation service.
type ValidationServiceError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ValidationServiceError) Error() string {
	var b strings.Builder
	b.WriteString("validation service unavailable")
	if e.URL != "" {
		fmt.Fprintf(&b, " (%s)", e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": request failed with status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ValidationServiceError) Unwrap() error {
	return e.Err
}

func (e *ValidationServiceError) Is(target error) bool {
	return target == ErrValidationServiceUnavailable
}
