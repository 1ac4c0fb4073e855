package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"comissiona/internal/cache"
	"comissiona/internal/model"
)

// SessionCookie is the name of the opaque cookie carried by the browser.
const SessionCookie = "app_session"

const sessionKeyPrefix = "session:"

var newSessionID = uuid.NewString

// SessionClaims is the signed payload inside the session cookie.
type SessionClaims struct {
	UserID    int        `json:"uid"`
	Role      model.Role `json:"role"`
	SessionID string     `json:"sid"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

// IssueSession signs a session token for user and records the session in
// redis so logout can revoke it before the token expires.
func IssueSession(ctx context.Context, rdb cache.Cache, secret string, user *model.User, ttl time.Duration) (string, error) {
	sid := newSessionID()
	now := time.Now()
	claims := SessionClaims{
		UserID:    user.ID,
		Role:      user.Role,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	if err := rdb.Set(ctx, sessionKeyPrefix+sid, user.ID, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// VerifySession parses and validates a session token, then checks the
// redis record still exists (it is deleted on logout).
func VerifySession(ctx context.Context, rdb cache.Cache, secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if err := rdb.Get(ctx, sessionKeyPrefix+claims.SessionID).Err(); err != nil {
		return nil, fmt.Errorf("session expired or revoked")
	}
	return claims, nil
}

// RevokeSession deletes the redis session record.
func RevokeSession(ctx context.Context, rdb cache.Cache, sessionID string) error {
	return rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
