package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID   int64           `db:"expense_id"`
	UserID      int64           `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	DateSpent   time.Time       `db:"date_spent"`
	CreatedAt   time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense row.
type ExpenseCreate struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	DateSpent   time.Time
}

// ExpenseUpdate is a partial update keyed by primary key.
type ExpenseUpdate struct {
	ExpenseID   int64
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[string]
	Description omit.Val[string]
	DateSpent   omit.Val[time.Time]
}

// IExpenseTable defines the interface for expense storage operations.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	ListByUser(ctx context.Context, userID int64) ([]Expense, error)
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Expense, error)
	InsertBatch(ctx context.Context, userID int64, creates []ExpenseCreate) ([]Expense, error)
	UpdatePartial(ctx context.Context, userID int64, update ExpenseUpdate) (*Expense, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
