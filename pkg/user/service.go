package user

import (
	"context"
	"errors"
	"fmt"

	"compositions/pkg/generator"
	"compositions/pkg/session"
)

type ServiceInterface interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
}

type Service struct {
	Repo    Repository
	Session session.Repository
}

func NewService(repo Repository, session session.Repository) *Service {
	return &Service{Repo: repo, Session: session}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	exist, err := s.Repo.FindByUsername(ctx, username)
	if exist != nil && err == nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}

	user := &User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and opens a session for the user.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !ValidatePassword(password, user.Password) {
		return nil, ErrInvalidCreds
	}

	sessionID, err := generator.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("SessionID gen error: %w", err)
	}
	if _, err := s.Session.Create(ctx, user.ID.Hex(), sessionID); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return user, nil
}
