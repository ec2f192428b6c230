package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

var secret = []byte("test-signing-secret")

var user = &sqlconfig.User{
	UserID:   21,
	Username: "dana",
	Email:    "dana@example.com",
}

// -- passwords --

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

// -- tokens --

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, user)
	assert.NoError(t, err)

	userID, err := ParseToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, userID)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, user)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("a different secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	_, err := ParseToken(secret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// -- middleware --

type mockUserResolver struct {
	mock.Mock
}

func (m *mockUserResolver) FindByID(ctx context.Context, id int64) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

// whoamiOutput echoes the resolved user so tests can see what the middleware
// placed in the context.
type whoamiOutput struct {
	Body struct {
		UserID int64 `json:"user_id"`
	}
}

func newMiddlewareTestAPI(t *testing.T, users *mockUserResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, secret, users))
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, input *struct{}) (*whoamiOutput, error) {
		out := &whoamiOutput{}
		if u := GetUser(ctx); u != nil {
			out.Body.UserID = u.UserID
		}
		return out, nil
	})
	return api
}

func TestMiddleware_ValidToken(t *testing.T) {
	users := new(mockUserResolver)
	users.On("FindByID", mock.Anything, user.UserID).Return(user, nil)

	token, err := GenerateToken(secret, user)
	assert.NoError(t, err)

	resp := newMiddlewareTestAPI(t, users).Get("/whoami", "Authorization: Bearer "+token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":21`)
	users.AssertExpectations(t)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	users := new(mockUserResolver)

	resp := newMiddlewareTestAPI(t, users).Get("/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestMiddleware_DeletedAccount(t *testing.T) {
	users := new(mockUserResolver)
	users.On("FindByID", mock.Anything, user.UserID).Return(nil, nil)

	token, err := GenerateToken(secret, user)
	assert.NoError(t, err)

	resp := newMiddlewareTestAPI(t, users).Get("/whoami", "Authorization: Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	users.AssertExpectations(t)
}
