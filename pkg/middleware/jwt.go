package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"compositions/pkg/claims"
	"compositions/pkg/session"

	jwt "github.com/dgrijalva/jwt-go"
)

const unauthorizedBody = `{"message":"unauthorized"}`

// CheckJWT resolves a bearer token into claims and rejects the request
// before it reaches the handler when the token is missing, invalid, or
// belongs to a user without a live session.
func CheckJWT(secret string, sessionStore session.Repository, logger *slog.Logger) func(http.Handler) http.Handler {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.NewValidationError("bad sign method", jwt.ValidationErrorSignatureInvalid)
		}
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				unauthorized(w)
				return
			}

			c := &claims.Claims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), c, keyFunc)
			if err != nil || !token.Valid || c.User.ID == "" || c.User.Username == "" {
				logger.Debug("jwt rejected", "error", err)
				unauthorized(w)
				return
			}

			ok, err := sessionStore.IsValid(r.Context(), c.User.ID)
			if err != nil {
				logger.Error("session check", "error", err, "user", c.User.ID)
				unauthorized(w)
				return
			}
			if !ok {
				logger.Debug("no live session", "user", c.User.ID)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(claims.WithClaims(r.Context(), c)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}
