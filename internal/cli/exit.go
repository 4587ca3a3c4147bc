package cli

import (
	"errors"

	"github.com/aretw0/orderbot/pkg/domain"
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitGraphConfig       = 2
	ExitInputUnavailable  = 3
	ExitValidationService = 4
	ExitTooManyAttempts   = 5
)

// ExitCode maps a run error onto the process exit code.
// An interrupt surfaces as input unavailability.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrGraphConfig):
		return ExitGraphConfig
	case errors.Is(err, domain.ErrInputUnavailable):
		return ExitInputUnavailable
	case errors.Is(err, domain.ErrValidationServiceUnavailable):
		return ExitValidationService
	case errors.Is(err, domain.ErrTooManyAttempts):
		return ExitTooManyAttempts
	}
	return ExitFailure
}
