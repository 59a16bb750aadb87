package service

import (
	"context"

	"go.uber.org/zap"

	"zenflow/internal/core/domain"
)

type SeedUser struct {
	Input domain.RegisterInput
	Role  domain.Role
}

// SeedUsers creates the bootstrap accounts that are not registered yet.
func SeedUsers(ctx context.Context, identity *IdentityService, seeds []SeedUser) error {
	for _, seed := range seeds {
		created, err := identity.EnsureUser(ctx, seed.Input, seed.Role)
		if err != nil {
			return err
		}
		if created {
			zap.L().Info("seeded user", zap.String("email", seed.Input.Email), zap.String("role", string(seed.Role)))
		}
	}
	return nil
}
