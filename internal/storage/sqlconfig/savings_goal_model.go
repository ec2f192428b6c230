package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a row in the savings_goals table. Deadline is
// optional; SavedAmount accumulates toward TargetAmount with no enforced
// ceiling.
type SavingsGoal struct {
	GoalID       int64           `db:"goal_id"`
	UserID       int64           `db:"user_id"`
	GoalName     string          `db:"goal_name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	SavedAmount  decimal.Decimal `db:"saved_amount"`
	Deadline     *time.Time      `db:"deadline"`
	CreatedAt    time.Time       `db:"created_at"`
}

// SavingsGoalCreate is the input for creating a new savings goal row.
type SavingsGoalCreate struct {
	GoalName     string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Deadline     *time.Time
}

// SavingsGoalUpdate is a partial update keyed by primary key. Deadline is
// tri-state: unset leaves it alone, null clears it, a value sets it.
type SavingsGoalUpdate struct {
	GoalID       int64
	GoalName     omit.Val[string]
	TargetAmount omit.Val[decimal.Decimal]
	SavedAmount  omit.Val[decimal.Decimal]
	Deadline     omitnull.Val[time.Time]
}

// ISavingsGoalTable defines the interface for savings goal storage operations.
//
//go:generate mockery --name ISavingsGoalTable --output mock_ISavingsGoalTable.go
type ISavingsGoalTable interface {
	ListByUser(ctx context.Context, userID int64) ([]SavingsGoal, error)
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]SavingsGoal, error)
	InsertBatch(ctx context.Context, userID int64, creates []SavingsGoalCreate) ([]SavingsGoal, error)
	UpdatePartial(ctx context.Context, userID int64, update SavingsGoalUpdate) (*SavingsGoal, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}
