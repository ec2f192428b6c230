package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// SavingsGoalService handles savings goals. Reads go straight to storage; writes
// are funneled through the operator so each batch runs in one transaction.
type SavingsGoalService struct {
	savingsGoals sqlconfig.ISavingsGoalTable
	operator     operator.IOperatorDelegator
}

func NewSavingsGoalService(store *storage.Storage, op operator.IOperatorDelegator) *SavingsGoalService {
	return &SavingsGoalService{
		savingsGoals: store.SavingsGoals,
		operator:     op,
	}
}

func (s *SavingsGoalService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.SavingsGoal, error) {
	return s.savingsGoals.ListByUser(ctx, userID)
}

func (s *SavingsGoalService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.SavingsGoal, error) {
	return s.savingsGoals.ListByIDs(ctx, userID, ids)
}

func (s *SavingsGoalService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.SavingsGoalCreate) ([]sqlconfig.SavingsGoal, error) {
	action := &actions.CreateSavingsGoals{
		UserID:  userID,
		Creates: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *SavingsGoalService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.SavingsGoalUpdate) ([]sqlconfig.SavingsGoal, error) {
	action := &actions.UpdateSavingsGoals{
		UserID:  userID,
		Updates: updates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *SavingsGoalService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	action := &actions.DeleteSavingsGoals{
		UserID: userID,
		IDs:    ids,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
