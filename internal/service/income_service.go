package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// IncomeService handles income records. Reads go straight to storage; writes
// are funneled through the operator so each batch runs in one transaction.
type IncomeService struct {
	income   sqlconfig.IIncomeTable
	operator operator.IOperatorDelegator
}

func NewIncomeService(store *storage.Storage, op operator.IOperatorDelegator) *IncomeService {
	return &IncomeService{
		income:   store.Income,
		operator: op,
	}
}

func (s *IncomeService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Income, error) {
	return s.income.ListByUser(ctx, userID)
}

func (s *IncomeService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Income, error) {
	return s.income.ListByIDs(ctx, userID, ids)
}

func (s *IncomeService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.IncomeCreate) ([]sqlconfig.Income, error) {
	action := &actions.CreateIncomes{
		UserID:  userID,
		Creates: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *IncomeService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.IncomeUpdate) ([]sqlconfig.Income, error) {
	action := &actions.UpdateIncomes{
		UserID:  userID,
		Updates: updates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *IncomeService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	action := &actions.DeleteIncomes{
		UserID: userID,
		IDs:    ids,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
