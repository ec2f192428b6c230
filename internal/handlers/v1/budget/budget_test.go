package budget

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

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Budget, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]sqlconfig.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, ids)
	rows, _ := args.Get(0).([]sqlconfig.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.BudgetCreate) ([]sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, creates)
	rows, _ := args.Get(0).([]sqlconfig.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.BudgetUpdate) ([]sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, updates)
	rows, _ := args.Get(0).([]sqlconfig.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

var testUser = &sqlconfig.User{UserID: 3, Username: "kenji", Email: "kenji@example.com"}

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), testUser)))
	})
	NewCreateBudgetsHandler(svc).Register(api)
	NewGetBudgetHandler(svc).Register(api)
	NewGetBudgetsHandler(svc).Register(api)
	NewGetAllBudgetsHandler(svc).Register(api)
	NewUpdateBudgetsHandler(svc).Register(api)
	NewDeleteBudgetHandler(svc).Register(api)
	NewDeleteBudgetsHandler(svc).Register(api)
	return api
}

func budgetRow(id int64) sqlconfig.Budget {
	return sqlconfig.Budget{
		BudgetID:  id,
		UserID:    testUser.UserID,
		Category:  "groceries",
		Amount:    decimal.RequireFromString("400.00"),
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC),
	}
}

// -- parse unit tests --

func TestParseCreateBudgetBody_EndBeforeStart(t *testing.T) {
	_, err := parseCreateBudgetBody(CreateBudgetBody{
		Category:  "groceries",
		Amount:    "400.00",
		StartDate: "2025-03-31",
		EndDate:   "2025-03-01",
	})
	assert.Error(t, err)
}

func TestParseCreateBudgetBody_SingleDayRangeAllowed(t *testing.T) {
	create, err := parseCreateBudgetBody(CreateBudgetBody{
		Category:  "groceries",
		Amount:    "400.00",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, create.StartDate, create.EndDate)
}

func TestParseUpdateBudgetBody_EndBeforeStart(t *testing.T) {
	start := "2025-04-10"
	end := "2025-04-01"
	_, err := parseUpdateBudgetBody(UpdateBudgetBody{
		BudgetID:  1,
		StartDate: &start,
		EndDate:   &end,
	})
	assert.Error(t, err)
}

func TestParseUpdateBudgetBody_SingleEndNotChecked(t *testing.T) {
	// Moving only one end of the range is validated by the database
	// constraint, not here, because the other end is unknown.
	end := "2020-01-01"
	update, err := parseUpdateBudgetBody(UpdateBudgetBody{
		BudgetID: 1,
		EndDate:  &end,
	})
	assert.NoError(t, err)
	assert.True(t, update.EndDate.IsValue())
	assert.False(t, update.StartDate.IsValue())
}

func TestParseUpdateBudgetBody_NoFieldsRejected(t *testing.T) {
	_, err := parseUpdateBudgetBody(UpdateBudgetBody{BudgetID: 1})
	assert.Error(t, err)
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

// -- HTTP integration tests --

func TestHTTP_GetBudget_ReturnsSingleRow(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{6}).
		Return([]sqlconfig.Budget{budgetRow(6)}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/budget/get_budget/6")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results Budget `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(6), body.Results.BudgetID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBudget_NotFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{404}).
		Return([]sqlconfig.Budget{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/budget/get_budget/404")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudgets(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBatch", mock.Anything, testUser.UserID, mock.Anything).
		Return([]sqlconfig.Budget{budgetRow(1)}, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/budget/post_budget", map[string]any{
		"budgets": []map[string]any{
			{"category": "groceries", "amount": "400.00", "start_date": "2025-03-01", "end_date": "2025-03-31"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body struct {
		Success bool     `json:"success"`
		Results []Budget `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "2025-03-31", body.Results[0].EndDate)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudgets_InvertedRangeRejected(t *testing.T) {
	mockSvc := new(mockBudgetService)

	resp := newTestAPI(t, mockSvc).Post("/api/budget/post_budget", map[string]any{
		"budgets": []map[string]any{
			{"category": "groceries", "amount": "400.00", "start_date": "2025-03-31", "end_date": "2025-03-01"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_GetBudgets_NoneFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{8}).
		Return([]sqlconfig.Budget{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/budget/get_budgets?ids=8")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteBudgets(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("DeleteByIDs", mock.Anything, testUser.UserID, []int64{1, 2}).
		Return(int64(2), nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/budget/delete_budgets?ids=1,2")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}
