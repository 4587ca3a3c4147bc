package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/orderbot/pkg/domain"
)

// DebugHooks logs every step transition, state diff and validation outcome at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Enter Step", "run_id", e.RunID, "step_id", e.StepID, "kind", e.Kind)
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Leave Step", "run_id", e.RunID, "step_id", e.StepID, "next", e.Next, "diff", e.Diff)
		},
		OnValidation: func(ctx context.Context, e *domain.ValidationEvent) {
			if e.Accepted {
				logger.Debug("Validation (Accepted)", "run_id", e.RunID, "field", e.Field, "value", e.Value)
				return
			}
			logger.Debug("Validation (Rejected)", "run_id", e.RunID, "field", e.Field, "value", e.Value, "attempt", e.Attempt)
		},
	}
}
