package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Income represents a row in the income table.
type Income struct {
	IncomeID     int64           `db:"income_id"`
	UserID       int64           `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Source       string          `db:"source"`
	DateReceived time.Time       `db:"date_received"`
	CreatedAt    time.Time       `db:"created_at"`
}

// IncomeCreate is the input for creating a new income row. The owning user is
// supplied separately so a caller can never insert rows for someone else.
type IncomeCreate struct {
	Amount       decimal.Decimal
	Source       string
	DateReceived time.Time
}

// IncomeUpdate is a partial update keyed by primary key. Unset fields are left
// unchanged; set fields are applied even when they hold a zero value.
type IncomeUpdate struct {
	IncomeID     int64
	Amount       omit.Val[decimal.Decimal]
	Source       omit.Val[string]
	DateReceived omit.Val[time.Time]
}

// IIncomeTable defines the interface for income storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IIncomeTable --output mock_IIncomeTable.go
type IIncomeTable interface {
	ListByUser(ctx context.Context, userID int64) ([]Income, error)
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Income, error)
	InsertBatch(ctx context.Context, userID int64, creates []IncomeCreate) ([]Income, error)
	UpdatePartial(ctx context.Context, userID int64, update IncomeUpdate) (*Income, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
