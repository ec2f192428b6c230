package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id int64) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*sqlconfig.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) ListByIDs(ctx context.Context, ids []int64) ([]sqlconfig.User, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserTable) InsertBatch(ctx context.Context, creates []sqlconfig.UserCreate) ([]sqlconfig.User, error) {
	args := m.Called(ctx, creates)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserTable) UpdatePartial(ctx context.Context, update sqlconfig.UserUpdate) (*sqlconfig.User, error) {
	args := m.Called(ctx, update)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

var jwtSecret = []byte("service-test-secret")

func storedUser() *sqlconfig.User {
	hash, _ := auth.HashPassword("correct-password")
	return &sqlconfig.User{
		UserID:       31,
		Username:     "iris",
		Email:        "iris@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthService_Signup(t *testing.T) {
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris").Return(nil, nil)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris@example.com").Return(nil, nil)

	op := new(mockDelegator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.CreateUsers)
		return ok && len(action.Creates) == 1 &&
			action.Creates[0].Username == "iris" &&
			action.Creates[0].PasswordHash != "correct-password"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateUsers).Results = []sqlconfig.User{*storedUser()}
	}).Return(nil)

	svc := &AuthService{users: users, operator: op, jwtSecret: jwtSecret}

	user, token, err := svc.Signup(context.Background(), "iris", "iris@example.com", "correct-password")
	assert.NoError(t, err)
	assert.Equal(t, int64(31), user.UserID)

	userID, err := auth.ParseToken(jwtSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), userID)
	users.AssertExpectations(t)
	op.AssertExpectations(t)
}

func TestAuthService_SignupTakenUsername(t *testing.T) {
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris").Return(storedUser(), nil)

	svc := &AuthService{users: users, operator: new(mockDelegator), jwtSecret: jwtSecret}

	_, _, err := svc.Signup(context.Background(), "iris", "other@example.com", "whatever-pass")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_SignupTakenEmail(t *testing.T) {
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "newname").Return(nil, nil)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris@example.com").Return(storedUser(), nil)

	svc := &AuthService{users: users, operator: new(mockDelegator), jwtSecret: jwtSecret}

	_, _, err := svc.Signup(context.Background(), "newname", "iris@example.com", "whatever-pass")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	row := storedUser()
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris").Return(row, nil)

	svc := &AuthService{users: users, jwtSecret: jwtSecret}

	user, token, err := svc.Login(context.Background(), "iris", "correct-password")
	assert.NoError(t, err)
	assert.Equal(t, row.UserID, user.UserID)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginUnknownAccount(t *testing.T) {
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "ghost").Return(nil, nil)

	svc := &AuthService{users: users, jwtSecret: jwtSecret}

	_, _, err := svc.Login(context.Background(), "ghost", "whatever-pass")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	users := new(mockUserTable)
	users.On("FindByUsernameOrEmail", mock.Anything, "iris").Return(storedUser(), nil)

	svc := &AuthService{users: users, jwtSecret: jwtSecret}

	_, _, err := svc.Login(context.Background(), "iris", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
