package ports

import (
	"context"

	"zenflow/internal/core/domain"
)

type AdminService interface {
	ListUsers(ctx context.Context, callerID string) ([]domain.User, error)
	GlobalStats(ctx context.Context) (domain.GlobalStats, error)
}
