package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// TransactionType is the source side of a transaction row.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a row in the transactions table. ReferenceID points
// at the income or expense row the transaction was recorded from; the schema
// does not enforce that link.
type Transaction struct {
	TransactionID   int64           `db:"transaction_id"`
	UserID          int64           `db:"user_id"`
	Type            TransactionType `db:"type"`
	ReferenceID     int64           `db:"reference_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction row.
type TransactionCreate struct {
	Type            TransactionType
	ReferenceID     int64
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// TransactionUpdate is a partial update keyed by primary key.
type TransactionUpdate struct {
	TransactionID   int64
	Type            omit.Val[TransactionType]
	ReferenceID     omit.Val[int64]
	Amount          omit.Val[decimal.Decimal]
	TransactionDate omit.Val[time.Time]
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	ListByUser(ctx context.Context, userID int64) ([]Transaction, error)
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]Transaction, error)
	InsertBatch(ctx context.Context, userID int64, creates []TransactionCreate) ([]Transaction, error)
	UpdatePartial(ctx context.Context, userID int64, update TransactionUpdate) (*Transaction, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
