package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

const (
	tokenKeyPrefix = "auth_token:"
	userKeyPrefix  = "auth_user:"
)

// SessionCache holds each user's current login as two store keys: the raw token and the
// user without its secret, both suffixed with the user id.
type SessionCache struct {
	store ports.Store
}

var _ ports.SessionCache = (*SessionCache)(nil)

func NewSessionCache(s ports.Store) *SessionCache {
	return &SessionCache{store: s}
}

func TokenKey(userID string) string {
	return tokenKeyPrefix + userID
}

func UserKey(userID string) string {
	return userKeyPrefix + userID
}

// Save replaces the session of session.User; other users' sessions are untouched.
func (c *SessionCache) Save(ctx context.Context, session domain.Session) error {
	userID := session.User.ID
	if userID == "" {
		return fmt.Errorf("cache session: %w", domain.ErrUserNotFound)
	}

	payload, err := json.Marshal(mapDomainUserToUserRecord(session.User.Public()))
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := c.store.Save(ctx, TokenKey(userID), []byte(session.Token)); err != nil {
		return err
	}
	return c.store.Save(ctx, UserKey(userID), payload)
}

// Load reports false when either the token or the cached user is missing.
func (c *SessionCache) Load(ctx context.Context, userID string) (domain.Session, bool, error) {
	token, err := c.store.Load(ctx, TokenKey(userID))
	if err != nil {
		return domain.Session{}, false, err
	}
	payload, err := c.store.Load(ctx, UserKey(userID))
	if err != nil {
		return domain.Session{}, false, err
	}
	if len(token) == 0 || len(payload) == 0 {
		return domain.Session{}, false, nil
	}

	var record userRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session user: %w", err)
	}
	return domain.Session{Token: string(token), User: mapUserRecordToDomainUser(record)}, true, nil
}

func (c *SessionCache) Clear(ctx context.Context, userID string) error {
	if err := c.store.Delete(ctx, TokenKey(userID)); err != nil {
		return err
	}
	return c.store.Delete(ctx, UserKey(userID))
}
