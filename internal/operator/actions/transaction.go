package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateTransactions inserts a batch of transaction rows for one user. Results holds the
// stored rows after Perform succeeds.
type CreateTransactions struct {
	UserID  int64
	Creates []sqlconfig.TransactionCreate
	Results []sqlconfig.Transaction
}

func (a *CreateTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Transactions.InsertBatch(ctx, a.UserID, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateTransactions applies a batch of partial updates. Every targeted row must
// exist and belong to the user or the whole batch rolls back.
type UpdateTransactions struct {
	UserID  int64
	Updates []sqlconfig.TransactionUpdate
	Results []sqlconfig.Transaction
}

func (a *UpdateTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.Transaction, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.Transactions.UpdatePartial(ctx, a.UserID, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("transaction %d: %w", update.TransactionID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteTransactions removes the user's rows matching IDs. Missing ids are not an
// error; Affected reports how many rows actually went away.
type DeleteTransactions struct {
	UserID   int64
	IDs      []int64
	Affected int64
}

func (a *DeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Transactions.DeleteByIDs(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
