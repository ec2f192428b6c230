package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateBudgets inserts a batch of budget rows for one user.
type CreateBudgets struct {
	UserID  int64
	Creates []sqlconfig.BudgetCreate
	Results []sqlconfig.Budget
}

func (a *CreateBudgets) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Budgets.InsertBatch(ctx, a.UserID, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateBudgets applies a batch of partial updates atomically.
type UpdateBudgets struct {
	UserID  int64
	Updates []sqlconfig.BudgetUpdate
	Results []sqlconfig.Budget
}

func (a *UpdateBudgets) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.Budget, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.Budgets.UpdatePartial(ctx, a.UserID, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("budget %d: %w", update.BudgetID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteBudgets removes the user's rows matching IDs.
type DeleteBudgets struct {
	UserID   int64
	IDs      []int64
	Affected int64
}

func (a *DeleteBudgets) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Budgets.DeleteByIDs(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
