package session

import (
	"context"
	"time"
)

// TTL is how long a login stays valid.
const TTL = time.Hour

type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	Create(ctx context.Context, userID, sessionID string) (string, error)
	IsValid(ctx context.Context, userID string) (bool, error)
	Invalidate(ctx context.Context, userID string) error
}
