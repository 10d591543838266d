package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compositions/pkg/claims"
	"compositions/pkg/middleware"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const secret = "middleware-secret"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockSession struct {
	mock.Mock
}

func (m *mockSession) Create(ctx context.Context, userID, sessionID string) (string, error) {
	args := m.Called(userID, sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockSession) IsValid(ctx context.Context, userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSession) Invalidate(ctx context.Context, userID string) error {
	return m.Called(userID).Error(0)
}

func signed(t *testing.T, c *claims.Claims, key string) string {
	token, err := c.Sign(key)
	assert.NoError(t, err)
	return token
}

func TestCheckJWT(t *testing.T) {
	var seen *claims.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = claims.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	valid := claims.New("alice", "user123", time.Now())

	tests := []struct {
		name       string
		header     string
		session    func(m *mockSession)
		wantStatus int
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signed(t, valid, "other"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signed(t, claims.New("alice", "user123", time.Now().Add(-2*time.Hour)), secret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing user id",
			header:     "Bearer " + signed(t, claims.New("alice", "", time.Now()), secret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no live session",
			header:     "Bearer " + signed(t, valid, secret),
			session:    func(m *mockSession) { m.On("IsValid", "user123").Return(false, nil) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "session store error",
			header:     "Bearer " + signed(t, valid, secret),
			session:    func(m *mockSession) { m.On("IsValid", "user123").Return(false, errors.New("db down")) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid",
			header:     "Bearer " + signed(t, valid, secret),
			session:    func(m *mockSession) { m.On("IsValid", "user123").Return(true, nil) },
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			sessions := new(mockSession)
			if tc.session != nil {
				tc.session(sessions)
			}
			h := middleware.CheckJWT(secret, sessions, quiet)(next)

			r := httptest.NewRequest(http.MethodGet, "/compositions/currentuser", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				if assert.NotNil(t, seen) {
					assert.Equal(t, "user123", seen.User.ID)
					assert.Equal(t, "alice", seen.User.Username)
				}
			} else {
				assert.Nil(t, seen)
				assert.JSONEq(t, `{"message":"unauthorized"}`, w.Body.String())
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestCheckJWTRejectsOtherAlgorithms(t *testing.T) {
	sessions := new(mockSession)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims.New("alice", "user123", time.Now())).
		SignedString([]byte(secret))
	assert.NoError(t, err)

	h := middleware.CheckJWT(secret, sessions, quiet)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	sessions.AssertNotCalled(t, "IsValid", mock.Anything)
}
