package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) ListAll(ctx context.Context, callerID int64) ([]sqlconfig.User, error) {
	args := m.Called(ctx, callerID)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserService) ListByIDs(ctx context.Context, callerID int64, ids []int64) ([]sqlconfig.User, error) {
	args := m.Called(ctx, callerID, ids)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserService) CreateBatch(ctx context.Context, newUsers []service.NewUser) ([]sqlconfig.User, error) {
	args := m.Called(ctx, newUsers)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserService) UpdateBatch(ctx context.Context, callerID int64, patches []service.UserPatch) ([]sqlconfig.User, error) {
	args := m.Called(ctx, callerID, patches)
	rows, _ := args.Get(0).([]sqlconfig.User)
	return rows, args.Error(1)
}

func (m *mockUserService) DeleteByIDs(ctx context.Context, callerID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, callerID, ids)
	return args.Get(0).(int64), args.Error(1)
}

var caller = &sqlconfig.User{
	UserID:    5,
	Username:  "remy",
	Email:     "remy@example.com",
	CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
}

func newUsersTestAPI(t *testing.T, svc *mockUserService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), caller)))
	})
	NewCreateUsersHandler(svc).Register(api)
	NewGetUserHandler(svc).Register(api)
	NewGetUsersHandler(svc).Register(api)
	NewGetAllUsersHandler(svc).Register(api)
	NewUpdateUsersHandler(svc).Register(api)
	NewDeleteUserHandler(svc).Register(api)
	NewDeleteUsersHandler(svc).Register(api)
	return api
}

func TestHTTP_GetAllUsers_ReturnsOnlyCaller(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("ListAll", mock.Anything, caller.UserID).
		Return([]sqlconfig.User{*caller}, nil)

	resp := newUsersTestAPI(t, mockSvc).Get("/api/users/get_all_users")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results []User `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results, 1)
	assert.Equal(t, "remy", body.Results[0].Username)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetUsers_ForeignIDsComeBackEmpty(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("ListByIDs", mock.Anything, caller.UserID, []int64{99}).
		Return([]sqlconfig.User{}, nil)

	resp := newUsersTestAPI(t, mockSvc).Get("/api/users/get_users?ids=99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetUser_ReturnsCaller(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("ListByIDs", mock.Anything, caller.UserID, []int64{5}).
		Return([]sqlconfig.User{*caller}, nil)

	resp := newUsersTestAPI(t, mockSvc).Get("/api/users/get_user/5")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results User `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(5), body.Results.UserID)
	assert.Equal(t, "remy", body.Results.Username)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetUser_ForeignIDIs404(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("ListByIDs", mock.Anything, caller.UserID, []int64{99}).
		Return([]sqlconfig.User{}, nil)

	resp := newUsersTestAPI(t, mockSvc).Get("/api/users/get_user/99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateUsers_NoFieldsRejected(t *testing.T) {
	mockSvc := new(mockUserService)

	resp := newUsersTestAPI(t, mockSvc).Put("/api/users/put_user", map[string]any{
		"users": []map[string]any{
			{"user_id": 5},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateUsers(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateBatch", mock.Anything, []service.NewUser{
		{Username: "nico", Email: "nico@example.com", Password: "secret-password"},
	}).Return([]sqlconfig.User{{
		UserID:    6,
		Username:  "nico",
		Email:     "nico@example.com",
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)

	resp := newUsersTestAPI(t, mockSvc).Post("/api/users/post_users", map[string]any{
		"users": []map[string]any{
			{"username": "nico", "email": "nico@example.com", "password": "secret-password"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body struct {
		Results []User `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(6), body.Results[0].UserID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateUsers_PatchForwarded(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("UpdateBatch", mock.Anything, caller.UserID, mock.MatchedBy(func(patches []service.UserPatch) bool {
		return len(patches) == 1 &&
			patches[0].UserID == caller.UserID &&
			patches[0].Email.IsValue() &&
			!patches[0].Username.IsValue() &&
			!patches[0].Password.IsValue()
	})).Return([]sqlconfig.User{*caller}, nil)

	resp := newUsersTestAPI(t, mockSvc).Put("/api/users/put_user", map[string]any{
		"users": []map[string]any{
			{"user_id": caller.UserID, "email": "new@example.com"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateUsers_ForeignIDIs404(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("UpdateBatch", mock.Anything, caller.UserID, mock.Anything).
		Return(nil, fmt.Errorf("user 99: %w", actions.ErrNotFound))

	resp := newUsersTestAPI(t, mockSvc).Put("/api/users/put_user", map[string]any{
		"users": []map[string]any{
			{"user_id": 99, "email": "new@example.com"},
		},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteUser(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("DeleteByIDs", mock.Anything, caller.UserID, []int64{5}).
		Return(int64(1), nil)

	resp := newUsersTestAPI(t, mockSvc).Delete("/api/users/delete_user/5")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results int64 `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.Results)
	mockSvc.AssertExpectations(t)
}
