package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// BudgetService handles budget records. Reads go straight to storage; writes
// are funneled through the operator so each batch runs in one transaction.
type BudgetService struct {
	budget   sqlconfig.IBudgetTable
	operator operator.IOperatorDelegator
}

func NewBudgetService(store *storage.Storage, op operator.IOperatorDelegator) *BudgetService {
	return &BudgetService{
		budget:   store.Budgets,
		operator: op,
	}
}

func (s *BudgetService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Budget, error) {
	return s.budget.ListByUser(ctx, userID)
}

func (s *BudgetService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Budget, error) {
	return s.budget.ListByIDs(ctx, userID, ids)
}

func (s *BudgetService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.BudgetCreate) ([]sqlconfig.Budget, error) {
	action := &actions.CreateBudgets{
		UserID:  userID,
		Creates: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *BudgetService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.BudgetUpdate) ([]sqlconfig.Budget, error) {
	action := &actions.UpdateBudgets{
		UserID:  userID,
		Updates: updates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *BudgetService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	action := &actions.DeleteBudgets{
		UserID: userID,
		IDs:    ids,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
