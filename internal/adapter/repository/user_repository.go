package repository

import (
	"context"
	"time"

	"zenflow/internal/adapter/store"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	users *store.Collection[userRecord]
}

type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(s ports.Store) *UserRepository {
	return &UserRepository{users: store.NewCollection[userRecord](s, usersCollection)}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	records, err := r.users.Get(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(records))
	for _, record := range records {
		users = append(users, mapUserRecordToDomainUser(record))
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.find(ctx, func(record userRecord) bool { return record.ID == id })
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.find(ctx, func(record userRecord) bool { return record.Email == email })
}

// Create appends the user unless its email or username is taken. Email is checked first.
// The check and the write happen under the collection lock.
func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	return r.users.Update(ctx, func(records []userRecord) ([]userRecord, error) {
		for _, record := range records {
			if record.Email == user.Email {
				return nil, domain.ErrDuplicateEmail
			}
		}
		for _, record := range records {
			if record.Username == user.Username {
				return nil, domain.ErrDuplicateUsername
			}
		}
		return append(records, mapDomainUserToUserRecord(user)), nil
	})
}

func (r *UserRepository) find(ctx context.Context, match func(userRecord) bool) (domain.User, error) {
	records, err := r.users.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, record := range records {
		if match(record) {
			return mapUserRecordToDomainUser(record), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func mapUserRecordToDomainUser(record userRecord) domain.User {
	return domain.User{
		ID:           record.ID,
		Email:        record.Email,
		Username:     record.Username,
		Role:         domain.Role(record.Role),
		PasswordHash: record.PasswordHash,
		CreatedAt:    record.CreatedAt,
	}
}

func mapDomainUserToUserRecord(user domain.User) userRecord {
	return userRecord{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Role:         string(user.Role),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
	}
}
