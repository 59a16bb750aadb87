package ports

import (
	"context"
	"time"

	"zenflow/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
}

type SessionCache interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context, userID string) (domain.Session, bool, error)
	Clear(ctx context.Context, userID string) error
}

type TokenIssuer interface {
	Issue(user domain.User, now time.Time) (string, error)
	Parse(token string) (domain.TokenClaims, error)
}

type IdentityService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Logout(ctx context.Context, userID string) error
	CurrentSession(ctx context.Context, userID string) (domain.Session, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
