package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// ExpenseService handles expense records. Reads go straight to storage; writes
// are funneled through the operator so each batch runs in one transaction.
type ExpenseService struct {
	expense  sqlconfig.IExpenseTable
	operator operator.IOperatorDelegator
}

func NewExpenseService(store *storage.Storage, op operator.IOperatorDelegator) *ExpenseService {
	return &ExpenseService{
		expense:  store.Expenses,
		operator: op,
	}
}

func (s *ExpenseService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Expense, error) {
	return s.expense.ListByUser(ctx, userID)
}

func (s *ExpenseService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Expense, error) {
	return s.expense.ListByIDs(ctx, userID, ids)
}

func (s *ExpenseService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.ExpenseCreate) ([]sqlconfig.Expense, error) {
	action := &actions.CreateExpenses{
		UserID:  userID,
		Creates: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *ExpenseService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.ExpenseUpdate) ([]sqlconfig.Expense, error) {
	action := &actions.UpdateExpenses{
		UserID:  userID,
		Updates: updates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *ExpenseService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	action := &actions.DeleteExpenses{
		UserID: userID,
		IDs:    ids,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
