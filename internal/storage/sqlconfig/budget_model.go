package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Budget represents a row in the budgets table. The schema enforces
// end_date >= start_date; input validation rejects it earlier.
type Budget struct {
	BudgetID  int64           `db:"budget_id"`
	UserID    int64           `db:"user_id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	StartDate time.Time       `db:"start_date"`
	EndDate   time.Time       `db:"end_date"`
	CreatedAt time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget row.
type BudgetCreate struct {
	Category  string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
}

// BudgetUpdate is a partial update keyed by primary key.
type BudgetUpdate struct {
	BudgetID  int64
	Category  omit.Val[string]
	Amount    omit.Val[decimal.Decimal]
	StartDate omit.Val[time.Time]
	EndDate   omit.Val[time.Time]
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	ListByUser(ctx context.Context, userID int64) ([]Budget, error)
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Budget, error)
	InsertBatch(ctx context.Context, userID int64, creates []BudgetCreate) ([]Budget, error)
	UpdatePartial(ctx context.Context, userID int64, update BudgetUpdate) (*Budget, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
