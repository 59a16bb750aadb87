package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

// JWTIssuer issues HS256 bearer tokens carrying the user id, role and expiry.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) Issue(user domain.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     now.Add(i.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse verifies the signature and expiry and returns the embedded claims.
func (i *JWTIssuer) Parse(tokenString string) (domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenClaims{}, fmt.Errorf("%w: invalid claims", domain.ErrInvalidToken)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return domain.TokenClaims{}, fmt.Errorf("%w: user_id not found", domain.ErrInvalidToken)
	}
	role, _ := claims["role"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: exp not found", domain.ErrInvalidToken)
	}

	return domain.TokenClaims{
		UserID:    userID,
		Role:      domain.Role(role),
		ExpiresAt: exp.Time,
	}, nil
}
