package claims

import (
	"context"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"

	TokenTTL = time.Hour
)

type UserClaim struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

type Claims struct {
	User UserClaim `json:"user"`
	jwt.StandardClaims
}

func New(username, userID string, now time.Time) *Claims {
	return &Claims{
		User: UserClaim{Username: username, ID: userID},
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.UTC().Unix(),
			ExpiresAt: now.Add(TokenTTL).UTC().Unix(),
		},
	}
}

// Sign produces an HS256 token for c.
func (c *Claims) Sign(secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, TokenContextKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	if !ok || c == nil || c.User.ID == "" {
		return nil, false
	}
	return c, true
}
