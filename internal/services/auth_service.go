package services

import (
	"context"
	"time"

	"beverage_store/internal/redis"
	"beverage_store/pkg/backendapi"
)

// AuthAPI is the slice of the backend client the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*backendapi.LoginResponse, error)
	ClearSession()
}

// SessionStorage holds the client-side session marker, satisfied by the
// redis client.
type SessionStorage interface {
	SetCustomerSession(sessionID string, session *redis.CustomerSession, ttl time.Duration) error
	GetCustomerSession(sessionID string) (*redis.CustomerSession, error)
	DeleteCustomerSession(sessionID string) error
}

type AuthService interface {
	Login(ctx context.Context, sessionID, email, password string) (*redis.CustomerSession, error)
	Logout(sessionID string) error
	Session(sessionID string) (*redis.CustomerSession, error)
}

type authService struct {
	api     AuthAPI
	storage SessionStorage
	ttl     time.Duration
}

func NewAuthService(api AuthAPI, storage SessionStorage, ttl time.Duration) AuthService {
	return &authService{api: api, storage: storage, ttl: ttl}
}

// Login authenticates against the backend and records a session marker.
// The marker only reflects what the server returned; admin status is
// never decided locally.
func (s *authService) Login(ctx context.Context, sessionID, email, password string) (*redis.CustomerSession, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := &redis.CustomerSession{
		UserID:     resp.UserID,
		Email:      email,
		IsAdmin:    resp.IsAdmin,
		LoggedInAt: time.Now(),
	}
	if err := s.storage.SetCustomerSession(sessionID, session, s.ttl); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) Logout(sessionID string) error {
	s.api.ClearSession()
	return s.storage.DeleteCustomerSession(sessionID)
}

func (s *authService) Session(sessionID string) (*redis.CustomerSession, error) {
	return s.storage.GetCustomerSession(sessionID)
}
