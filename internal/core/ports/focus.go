package ports

import (
	"context"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"
)

type FocusService interface {
	Suggest(ctx context.Context, userID string, energy domain.MentalEffort, budget int) (focus.Suggestion, error)
	Complete(ctx context.Context, userID, taskID string) (focus.Suggestion, error)
	TakeBreak(ctx context.Context, userID, taskID string) (focus.Suggestion, error)
}
