package income

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

type mockIncomeService struct {
	mock.Mock
}

func (m *mockIncomeService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID, ids)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.IncomeCreate) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID, creates)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.IncomeUpdate) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID, updates)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

var testUser = &sqlconfig.User{
	UserID:   7,
	Username: "frida",
	Email:    "frida@example.com",
}

// newTestAPI registers every income endpoint behind a middleware that
// injects the test user, mirroring what the auth middleware does in
// production.
func newTestAPI(t *testing.T, svc *mockIncomeService, user *sqlconfig.User) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if user != nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), user)))
		})
	}
	NewCreateIncomesHandler(svc).Register(api)
	NewGetIncomeHandler(svc).Register(api)
	NewGetIncomesHandler(svc).Register(api)
	NewGetAllIncomesHandler(svc).Register(api)
	NewUpdateIncomesHandler(svc).Register(api)
	NewDeleteIncomeHandler(svc).Register(api)
	NewDeleteIncomesHandler(svc).Register(api)
	return api
}

func incomeRow(id int64, amount, source, date string) sqlconfig.Income {
	dateReceived, _ := time.Parse(dateLayout, date)
	return sqlconfig.Income{
		IncomeID:     id,
		UserID:       testUser.UserID,
		Amount:       decimal.RequireFromString(amount),
		Source:       source,
		DateReceived: dateReceived,
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

type successBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Results []Income `json:"results"`
}

// -- parse unit tests --

func TestParseCreateIncomeBody(t *testing.T) {
	create, err := parseCreateIncomeBody(CreateIncomeBody{
		Amount:       "12.34",
		Source:       "salary",
		DateReceived: "2025-03-01",
	})
	assert.NoError(t, err)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, "salary", create.Source)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), create.DateReceived)
}

func TestParseCreateIncomeBody_NegativeAmount(t *testing.T) {
	_, err := parseCreateIncomeBody(CreateIncomeBody{
		Amount:       "-5.00",
		Source:       "salary",
		DateReceived: "2025-03-01",
	})
	assert.Error(t, err)
}

func TestParseUpdateIncomeBody_OnlySetFields(t *testing.T) {
	date := "2025-04-01"
	update, err := parseUpdateIncomeBody(UpdateIncomeBody{
		IncomeID:     9,
		DateReceived: &date,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), update.IncomeID)
	assert.False(t, update.Amount.IsValue())
	assert.False(t, update.Source.IsValue())
	assert.True(t, update.DateReceived.IsValue())
}

func TestParseUpdateIncomeBody_NoFieldsRejected(t *testing.T) {
	_, err := parseUpdateIncomeBody(UpdateIncomeBody{IncomeID: 9})
	assert.Error(t, err)
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

// -- create --

func TestHTTP_CreateIncomes_ReturnsInsertedRows(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("CreateBatch", mock.Anything, testUser.UserID, mock.MatchedBy(func(creates []sqlconfig.IncomeCreate) bool {
		return len(creates) == 2 &&
			creates[0].Amount.Equal(decimal.RequireFromString("1200.50")) &&
			creates[0].Source == "salary" &&
			creates[1].Source == "freelance"
	})).Return([]sqlconfig.Income{
		incomeRow(1, "1200.50", "salary", "2025-03-01"),
		incomeRow(2, "300.00", "freelance", "2025-03-02"),
	}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Post("/api/income/post_income", map[string]any{
		"incomes": []map[string]any{
			{"amount": "1200.50", "source": "salary", "date_received": "2025-03-01"},
			{"amount": "300.00", "source": "freelance", "date_received": "2025-03-02"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body successBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Results, 2)
	assert.Equal(t, int64(1), body.Results[0].IncomeID)
	assert.Equal(t, "1200.5", body.Results[0].Amount)
	assert.Equal(t, "2025-03-01", body.Results[0].DateReceived)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateIncomes_EmptyBatchRejected(t *testing.T) {
	mockSvc := new(mockIncomeService)

	resp := newTestAPI(t, mockSvc, testUser).Post("/api/income/post_income", map[string]any{
		"incomes": []map[string]any{},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateIncomes_ZeroAmountRejected(t *testing.T) {
	mockSvc := new(mockIncomeService)

	resp := newTestAPI(t, mockSvc, testUser).Post("/api/income/post_income", map[string]any{
		"incomes": []map[string]any{
			{"amount": "0", "source": "salary", "date_received": "2025-03-01"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateIncomes_BadDateRejected(t *testing.T) {
	mockSvc := new(mockIncomeService)

	resp := newTestAPI(t, mockSvc, testUser).Post("/api/income/post_income", map[string]any{
		"incomes": []map[string]any{
			{"amount": "10.00", "source": "salary", "date_received": "03/01/2025"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateIncomes_Unauthenticated(t *testing.T) {
	mockSvc := new(mockIncomeService)

	resp := newTestAPI(t, mockSvc, nil).Post("/api/income/post_income", map[string]any{
		"incomes": []map[string]any{
			{"amount": "10.00", "source": "salary", "date_received": "2025-03-01"},
		},
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// -- reads --

func TestHTTP_GetAllIncomes(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("ListAll", mock.Anything, testUser.UserID).
		Return([]sqlconfig.Income{incomeRow(1, "50.00", "gift", "2025-02-14")}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Get("/api/income/get_all_incomes")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body successBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results, 1)
	assert.Equal(t, "gift", body.Results[0].Source)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetIncomes_ByIDs(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{1, 3}).
		Return([]sqlconfig.Income{
			incomeRow(1, "50.00", "gift", "2025-02-14"),
			incomeRow(3, "75.00", "refund", "2025-02-20"),
		}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Get("/api/income/get_incomes?ids=1,3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body successBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results, 2)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetIncomes_NoneFound(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{99}).
		Return([]sqlconfig.Income{}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Get("/api/income/get_incomes?ids=99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetIncome_ReturnsSingleRow(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{4}).
		Return([]sqlconfig.Income{incomeRow(4, "220.00", "dividends", "2025-02-28")}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Get("/api/income/get_income/4")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Success bool   `json:"success"`
		Results Income `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(4), body.Results.IncomeID)
	assert.Equal(t, "dividends", body.Results.Source)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetIncome_NotFound(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("ListByIDs", mock.Anything, testUser.UserID, []int64{404}).
		Return([]sqlconfig.Income{}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Get("/api/income/get_income/404")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- update --

func TestHTTP_UpdateIncomes_PartialFields(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("UpdateBatch", mock.Anything, testUser.UserID, mock.MatchedBy(func(updates []sqlconfig.IncomeUpdate) bool {
		return len(updates) == 1 &&
			updates[0].IncomeID == 4 &&
			updates[0].Amount.IsValue() &&
			!updates[0].Source.IsValue() &&
			!updates[0].DateReceived.IsValue()
	})).Return([]sqlconfig.Income{incomeRow(4, "99.99", "salary", "2025-03-01")}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Put("/api/income/put_income", map[string]any{
		"incomes": []map[string]any{
			{"income_id": 4, "amount": "99.99"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateIncomes_NoFieldsRejected(t *testing.T) {
	mockSvc := new(mockIncomeService)

	resp := newTestAPI(t, mockSvc, testUser).Put("/api/income/put_income", map[string]any{
		"incomes": []map[string]any{
			{"income_id": 4},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_UpdateIncomes_EmptyStringApplied(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("UpdateBatch", mock.Anything, testUser.UserID, mock.MatchedBy(func(updates []sqlconfig.IncomeUpdate) bool {
		return len(updates) == 1 &&
			updates[0].Source.IsValue() &&
			updates[0].Source.MustGet() == ""
	})).Return([]sqlconfig.Income{incomeRow(4, "99.99", "", "2025-03-01")}, nil)

	resp := newTestAPI(t, mockSvc, testUser).Put("/api/income/put_income", map[string]any{
		"incomes": []map[string]any{
			{"income_id": 4, "source": ""},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateIncomes_MissingRowIs404(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("UpdateBatch", mock.Anything, testUser.UserID, mock.Anything).
		Return(nil, fmt.Errorf("income 42: %w", actions.ErrNotFound))

	resp := newTestAPI(t, mockSvc, testUser).Put("/api/income/put_income", map[string]any{
		"incomes": []map[string]any{
			{"income_id": 42, "amount": "10.00"},
		},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- delete --

func TestHTTP_DeleteIncome_MissingIDCountsZero(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("DeleteByIDs", mock.Anything, testUser.UserID, []int64{42}).
		Return(int64(0), nil)

	resp := newTestAPI(t, mockSvc, testUser).Delete("/api/income/delete_income/42")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Success bool  `json:"success"`
		Results int64 `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(0), body.Results)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteIncomes_Batch(t *testing.T) {
	mockSvc := new(mockIncomeService)
	mockSvc.On("DeleteByIDs", mock.Anything, testUser.UserID, []int64{1, 2, 3}).
		Return(int64(2), nil)

	resp := newTestAPI(t, mockSvc, testUser).Delete("/api/income/delete_incomes?ids=1,2,3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Results int64 `json:"results"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Results)
	mockSvc.AssertExpectations(t)
}
