package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateIncomes inserts a batch of income rows for one user. Results holds the
// stored rows after Perform succeeds.
type CreateIncomes struct {
	UserID  int64
	Creates []sqlconfig.IncomeCreate
	Results []sqlconfig.Income
}

func (a *CreateIncomes) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Income.InsertBatch(ctx, a.UserID, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateIncomes applies a batch of partial updates. Every targeted row must
// exist and belong to the user or the whole batch rolls back.
type UpdateIncomes struct {
	UserID  int64
	Updates []sqlconfig.IncomeUpdate
	Results []sqlconfig.Income
}

func (a *UpdateIncomes) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.Income, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.Income.UpdatePartial(ctx, a.UserID, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("income %d: %w", update.IncomeID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteIncomes removes the user's rows matching IDs. Missing ids are not an
// error; Affected reports how many rows actually went away.
type DeleteIncomes struct {
	UserID   int64
	IDs      []int64
	Affected int64
}

func (a *DeleteIncomes) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Income.DeleteByIDs(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
