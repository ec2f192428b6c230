package actions

import (
	"context"
	"fmt"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateUsers inserts a batch of user rows. Passwords are already hashed by
// the time the action is built.
type CreateUsers struct {
	Creates []sqlconfig.UserCreate
	Results []sqlconfig.User
}

func (a *CreateUsers) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Users.InsertBatch(ctx, a.Creates)
	if err != nil {
		return err
	}
	a.Results = rows
	return nil
}

// UpdateUsers applies a batch of partial updates atomically.
type UpdateUsers struct {
	Updates []sqlconfig.UserUpdate
	Results []sqlconfig.User
}

func (a *UpdateUsers) Perform(ctx context.Context, writer *storage.Writer) error {
	results := make([]sqlconfig.User, 0, len(a.Updates))
	for _, update := range a.Updates {
		row, err := writer.Users.UpdatePartial(ctx, update)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("user %d: %w", update.UserID, ErrNotFound)
		}
		results = append(results, *row)
	}
	a.Results = results
	return nil
}

// DeleteUsers removes the rows matching IDs. The database cascades every
// owned record with them.
type DeleteUsers struct {
	IDs      []int64
	Affected int64
}

func (a *DeleteUsers) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Users.DeleteByIDs(ctx, a.IDs)
	if err != nil {
		return err
	}
	a.Affected = affected
	return nil
}
