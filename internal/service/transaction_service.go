package service

import (
	"context"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// TransactionService handles the transaction ledger. Reads go straight to storage; writes
// are funneled through the operator so each batch runs in one transaction.
type TransactionService struct {
	transactions sqlconfig.ITransactionTable
	operator     operator.IOperatorDelegator
}

func NewTransactionService(store *storage.Storage, op operator.IOperatorDelegator) *TransactionService {
	return &TransactionService{
		transactions: store.Transactions,
		operator:     op,
	}
}

func (s *TransactionService) ListAll(ctx context.Context, userID int64) ([]sqlconfig.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *TransactionService) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Transaction, error) {
	return s.transactions.ListByIDs(ctx, userID, ids)
}

func (s *TransactionService) CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.TransactionCreate) ([]sqlconfig.Transaction, error) {
	action := &actions.CreateTransactions{
		UserID:  userID,
		Creates: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *TransactionService) UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.TransactionUpdate) ([]sqlconfig.Transaction, error) {
	action := &actions.UpdateTransactions{
		UserID:  userID,
		Updates: updates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Results, nil
}

func (s *TransactionService) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	action := &actions.DeleteTransactions{
		UserID: userID,
		IDs:    ids,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Affected, nil
}
