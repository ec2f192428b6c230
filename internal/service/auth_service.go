package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// AuthService handles signup and login. It owns the JWT signing secret.
type AuthService struct {
	users     sqlconfig.IUserTable
	operator  operator.IOperatorDelegator
	jwtSecret []byte
}

func NewAuthService(store *storage.Storage, op operator.IOperatorDelegator, jwtSecret []byte) *AuthService {
	return &AuthService{
		users:     store.Users,
		operator:  op,
		jwtSecret: jwtSecret,
	}
}

// Signup creates an account and returns it with a fresh token. Returns
// ErrUserExists when the username or email is already taken.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*sqlconfig.User, string, error) {
	for _, candidate := range []string{username, email} {
		existing, err := s.users.FindByUsernameOrEmail(ctx, candidate)
		if err != nil {
			return nil, "", err
		}
		if existing != nil {
			return nil, "", ErrUserExists
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	action := &actions.CreateUsers{
		Creates: []sqlconfig.UserCreate{{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, "", err
	}

	user := &action.Results[0]
	token, err := auth.GenerateToken(s.jwtSecret, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and returns the account with a fresh token.
// Returns ErrUserNotFound for an unknown account and ErrWrongPassword for a
// bad password, so the handler can map them to distinct statuses.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*sqlconfig.User, string, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrWrongPassword
	}

	token, err := auth.GenerateToken(s.jwtSecret, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
