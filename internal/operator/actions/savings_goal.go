package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateSavingsGoals inserts a batch of savings goal rows for one user.
type CreateSavingsGoals struct {
	UserID  int64
	Creates []sqlconfig.SavingsGoalCreate
	Results []sqlconfig.SavingsGoal
}

func (a *CreateSavingsGoals) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.SavingsGoals.InsertBatch(ctx, a.UserID, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateSavingsGoals applies a batch of partial updates atomically.
type UpdateSavingsGoals struct {
	UserID  int64
	Updates []sqlconfig.SavingsGoalUpdate
	Results []sqlconfig.SavingsGoal
}

func (a *UpdateSavingsGoals) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.SavingsGoal, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.SavingsGoals.UpdatePartial(ctx, a.UserID, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("savings goal %d: %w", update.GoalID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteSavingsGoals removes the user's rows matching IDs.
type DeleteSavingsGoals struct {
	UserID   int64
	IDs      []int64
	Affected int64
}

func (a *DeleteSavingsGoals) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.SavingsGoals.DeleteByIDs(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
