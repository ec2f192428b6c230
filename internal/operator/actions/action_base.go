package actions

import (
	"context"
	"errors"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
)

// ErrNotFound aborts an action when a targeted row does not exist or is owned
// by another user. The surrounding transaction is rolled back, so a batch that
// hits a missing row applies nothing.
var ErrNotFound = errors.New("record not found")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
