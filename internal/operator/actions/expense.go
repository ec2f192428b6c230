package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateExpenses inserts a batch of expense rows for one user.
type CreateExpenses struct {
	UserID  int64
	Creates []sqlconfig.ExpenseCreate
	Results []sqlconfig.Expense
}

func (a *CreateExpenses) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Expenses.InsertBatch(ctx, a.UserID, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateExpenses applies a batch of partial updates atomically.
type UpdateExpenses struct {
	UserID  int64
	Updates []sqlconfig.ExpenseUpdate
	Results []sqlconfig.Expense
}

func (a *UpdateExpenses) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.Expense, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.Expenses.UpdatePartial(ctx, a.UserID, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("expense %d: %w", update.ExpenseID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteExpenses removes the user's rows matching IDs.
type DeleteExpenses struct {
	UserID   int64
	IDs      []int64
	Affected int64
}

func (a *DeleteExpenses) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Expenses.DeleteByIDs(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
