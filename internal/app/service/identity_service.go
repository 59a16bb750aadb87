package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

type IdentityService struct {
	users      ports.UserRepository
	sessions   ports.SessionCache
	tokens     ports.TokenIssuer
	bcryptCost int
}

func NewIdentityService(users ports.UserRepository, sessions ports.SessionCache, tokens ports.TokenIssuer, bcryptCost int) *IdentityService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &IdentityService{users: users, sessions: sessions, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a USER account. A taken email is reported before a taken username.
func (s *IdentityService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	return s.create(ctx, input, domain.RoleUser)
}

// EnsureUser creates the account with the given role unless its email is already registered.
func (s *IdentityService) EnsureUser(ctx context.Context, input domain.RegisterInput, role domain.Role) (bool, error) {
	_, err := s.create(ctx, input, role)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *IdentityService) create(ctx context.Context, input domain.RegisterInput, role domain.Role) (domain.User, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" || username == "" || input.Password == "" {
		return domain.User{}, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	// The repository enforces email and username uniqueness atomically.
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user.Public(), nil
}

// Login checks the credentials, issues a token and caches the session.
func (s *IdentityService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user, time.Now())
	if err != nil {
		return domain.Session{}, fmt.Errorf("issue token: %w", err)
	}

	session := domain.Session{Token: token, User: user.Public()}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("cache session: %w", err)
	}
	return session, nil
}

// Logout drops userID's cached session; other users stay logged in.
func (s *IdentityService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Clear(ctx, userID)
}

// CurrentSession returns userID's cached session without checking token expiry.
func (s *IdentityService) CurrentSession(ctx context.Context, userID string) (domain.Session, error) {
	session, ok, err := s.sessions.Load(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	return session, nil
}

// Authenticate resolves a bearer token to an existing user.
func (s *IdentityService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.User{}, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidToken
		}
		return domain.User{}, err
	}
	return user.Public(), nil
}

var _ ports.IdentityService = (*IdentityService)(nil)
