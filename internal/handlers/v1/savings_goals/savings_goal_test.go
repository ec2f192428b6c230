package savingsgoals

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

type mockSavingsGoalService struct {
	mock.Mock
}

func (m *mockSavingsGoalService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.SavingsGoal, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]sqlconfig.SavingsGoal)
	return rows, args.Error(1)
}

func (m *mockSavingsGoalService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.SavingsGoal, error) {
	args := m.Called(ctx, userID, ids)
	rows, _ := args.Get(0).([]sqlconfig.SavingsGoal)
	return rows, args.Error(1)
}

func (m *mockSavingsGoalService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.SavingsGoalCreate) ([]sqlconfig.SavingsGoal, error) {
	args := m.Called(ctx, userID, creates)
	rows, _ := args.Get(0).([]sqlconfig.SavingsGoal)
	return rows, args.Error(1)
}

func (m *mockSavingsGoalService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.SavingsGoalUpdate) ([]sqlconfig.SavingsGoal, error) {
	args := m.Called(ctx, userID, updates)
	rows, _ := args.Get(0).([]sqlconfig.SavingsGoal)
	return rows, args.Error(1)
}

func (m *mockSavingsGoalService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

var testUser = &sqlconfig.User{UserID: 4, Username: "sol", Email: "sol@example.com"}

func newTestAPI(t *testing.T, svc *mockSavingsGoalService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), testUser)))
	})
	NewCreateSavingsGoalsHandler(svc).Register(api)
	NewGetSavingsGoalHandler(svc).Register(api)
	NewGetSavingsGoalsHandler(svc).Register(api)
	NewGetAllSavingsGoalsHandler(svc).Register(api)
	NewUpdateSavingsGoalsHandler(svc).Register(api)
	NewDeleteSavingsGoalHandler(svc).Register(api)
	NewDeleteSavingsGoalsHandler(svc).Register(api)
	return api
}

// -- parse unit tests --

func TestParseCreateSavingsGoalBody_Defaults(t *testing.T) {
	create, err := parseCreateSavingsGoalBody(CreateSavingsGoalBody{
		GoalName:     "emergency fund",
		TargetAmount: "5000.00",
	})
	assert.NoError(t, err)
	assert.True(t, create.SavedAmount.IsZero())
	assert.Nil(t, create.Deadline)
}

func TestParseCreateSavingsGoalBody_WithDeadline(t *testing.T) {
	deadline := "2026-06-30"
	create, err := parseCreateSavingsGoalBody(CreateSavingsGoalBody{
		GoalName:     "trip",
		TargetAmount: "1200.00",
		Deadline:     &deadline,
	})
	assert.NoError(t, err)
	assert.NotNil(t, create.Deadline)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *create.Deadline)
}

func TestParseCreateSavingsGoalBody_NegativeSavedAmount(t *testing.T) {
	saved := "-1.00"
	_, err := parseCreateSavingsGoalBody(CreateSavingsGoalBody{
		GoalName:     "trip",
		TargetAmount: "1200.00",
		SavedAmount:  &saved,
	})
	assert.Error(t, err)
}

func TestParseUpdateSavingsGoalBody_DeadlineTriState(t *testing.T) {
	// absent: leave alone
	name := "trip"
	update, err := parseUpdateSavingsGoalBody(UpdateSavingsGoalBody{GoalID: 1, GoalName: &name})
	assert.NoError(t, err)
	assert.True(t, update.Deadline.IsUnset())

	// empty string: clear
	empty := ""
	update, err = parseUpdateSavingsGoalBody(UpdateSavingsGoalBody{GoalID: 1, Deadline: &empty})
	assert.NoError(t, err)
	assert.False(t, update.Deadline.IsUnset())
	assert.True(t, update.Deadline.IsNull())

	// value: set
	deadline := "2026-06-30"
	update, err = parseUpdateSavingsGoalBody(UpdateSavingsGoalBody{GoalID: 1, Deadline: &deadline})
	assert.NoError(t, err)
	assert.True(t, update.Deadline.IsValue())
}

func TestParseUpdateSavingsGoalBody_NoFieldsRejected(t *testing.T) {
	_, err := parseUpdateSavingsGoalBody(UpdateSavingsGoalBody{GoalID: 1})
	assert.Error(t, err)
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

// -- HTTP integration tests --

func TestHTTP_GetSavingsGoal_ReturnsSingleRow(t *testing.T) {
	mockSvc := new(mockSavingsGoalService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{3}).
		Return([]sqlconfig.SavingsGoal{{
			GoalID:       3,
			UserID:       testUser.UserID,
			GoalName:     "emergency fund",
			TargetAmount: decimal.RequireFromString("5000.00"),
			SavedAmount:  decimal.RequireFromString("750.00"),
			CreatedAt:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		}}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/savings_goals/get_goal/3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results SavingsGoal `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.Results.GoalID)
	assert.Equal(t, "emergency fund", body.Results.GoalName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSavingsGoal_NotFound(t *testing.T) {
	mockSvc := new(mockSavingsGoalService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{404}).
		Return([]sqlconfig.SavingsGoal{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/savings_goals/get_goal/404")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateSavingsGoals(t *testing.T) {
	deadline := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	mockSvc := new(mockSavingsGoalService)
	mockSvc.On("CreateBatch", mock.Anything, testUser.UserID, mock.Anything).
		Return([]sqlconfig.SavingsGoal{{
			GoalID:       1,
			UserID:       testUser.UserID,
			GoalName:     "trip",
			TargetAmount: decimal.RequireFromString("1200.00"),
			SavedAmount:  decimal.Zero,
			Deadline:     &deadline,
			CreatedAt:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		}}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/savings_goals/post_goal", map[string]any{
		"savings_goals": []map[string]any{
			{"goal_name": "trip", "target_amount": "1200.00", "deadline": "2026-06-30"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body struct {
		Results []SavingsGoal `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Results[0].Deadline)
	assert.Equal(t, "2026-06-30", *body.Results[0].Deadline)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateSavingsGoals_ClearDeadline(t *testing.T) {
	mockSvc := new(mockSavingsGoalService)
	mockSvc.On("UpdateBatch", mock.Anything, testUser.UserID, mock.MatchedBy(func(updates []sqlconfig.SavingsGoalUpdate) bool {
		return len(updates) == 1 && updates[0].Deadline.IsNull()
	})).Return([]sqlconfig.SavingsGoal{{
		GoalID:       1,
		UserID:       testUser.UserID,
		GoalName:     "trip",
		TargetAmount: decimal.RequireFromString("1200.00"),
		SavedAmount:  decimal.Zero,
	}}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/savings_goals/put_goal", map[string]any{
		"savings_goals": []map[string]any{
			{"goal_id": 1, "deadline": ""},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results []SavingsGoal `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Results[0].Deadline)
	mockSvc.AssertExpectations(t)
}
