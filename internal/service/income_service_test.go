package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// mockDelegator stands in for the operator. Run hooks mutate the action the
// way a real Perform would, so services see Results filled in.
type mockDelegator struct {
	mock.Mock
}

func (m *mockDelegator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockIncomeTable struct {
	mock.Mock
}

func (m *mockIncomeTable) ListByUser(ctx context.Context, userID int64) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeTable) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID, ids)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeTable) InsertBatch(ctx context.Context, userID int64, creates []sqlconfig.IncomeCreate) ([]sqlconfig.Income, error) {
	args := m.Called(ctx, userID, creates)
	rows, _ := args.Get(0).([]sqlconfig.Income)
	return rows, args.Error(1)
}

func (m *mockIncomeTable) UpdatePartial(ctx context.Context, userID int64, update sqlconfig.IncomeUpdate) (*sqlconfig.Income, error) {
	args := m.Called(ctx, userID, update)
	row, _ := args.Get(0).(*sqlconfig.Income)
	return row, args.Error(1)
}

func (m *mockIncomeTable) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func TestIncomeService_ListAllDelegatesToStorage(t *testing.T) {
	table := new(mockIncomeTable)
	rows := []sqlconfig.Income{{IncomeID: 1, UserID: 9}}
	table.On("ListByUser", mock.Anything, int64(9)).Return(rows, nil)

	svc := &IncomeService{income: table, operator: new(mockDelegator)}

	got, err := svc.ListAll(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
	table.AssertExpectations(t)
}

func TestIncomeService_CreateBatchReturnsActionResults(t *testing.T) {
	op := new(mockDelegator)
	creates := []sqlconfig.IncomeCreate{{
		Amount:       decimal.RequireFromString("10.00"),
		Source:       "salary",
		DateReceived: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
	stored := []sqlconfig.Income{{IncomeID: 1, UserID: 9, Source: "salary"}}

	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.CreateIncomes)
		return ok && action.UserID == 9 && len(action.Creates) == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateIncomes).Results = stored
	}).Return(nil)

	svc := &IncomeService{income: new(mockIncomeTable), operator: op}

	got, err := svc.CreateBatch(context.Background(), 9, creates)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)
	op.AssertExpectations(t)
}

func TestIncomeService_CreateBatchSurfacesOperatorError(t *testing.T) {
	op := new(mockDelegator)
	boom := errors.New("tx failed")
	op.On("Process", mock.Anything, mock.Anything).Return(boom)

	svc := &IncomeService{income: new(mockIncomeTable), operator: op}

	_, err := svc.CreateBatch(context.Background(), 9, nil)
	assert.ErrorIs(t, err, boom)
}

func TestIncomeService_DeleteByIDsReportsAffected(t *testing.T) {
	op := new(mockDelegator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.DeleteIncomes)
		return ok && action.UserID == 9 && len(action.IDs) == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.DeleteIncomes).Affected = 2
	}).Return(nil)

	svc := &IncomeService{income: new(mockIncomeTable), operator: op}

	affected, err := svc.DeleteByIDs(context.Background(), 9, []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	op.AssertExpectations(t)
}
