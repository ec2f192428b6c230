// Package savingsgoals exposes the /api/savings_goals endpoints.
package savingsgoals

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// dateLayout is the wire format for savings goal dates.
const dateLayout = "2006-01-02"

// SavingsGoal is the API response model for a savings goal record.
type SavingsGoal struct {
	GoalID       int64   `json:"goal_id" doc:"Savings goal id"`
	UserID       int64   `json:"user_id" doc:"Owning user id"`
	GoalName     string  `json:"goal_name" doc:"What the user is saving for"`
	TargetAmount string  `json:"target_amount" doc:"Decimal amount to reach"`
	SavedAmount  string  `json:"saved_amount" doc:"Decimal amount saved so far"`
	Deadline     *string `json:"deadline" doc:"Target date, YYYY-MM-DD, null when open-ended"`
	CreatedAt    string  `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.SavingsGoal) SavingsGoal {
	out := SavingsGoal{
		GoalID:       row.GoalID,
		UserID:       row.UserID,
		GoalName:     row.GoalName,
		TargetAmount: row.TargetAmount.String(),
		SavedAmount:  row.SavedAmount.String(),
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
	if row.Deadline != nil {
		deadline := row.Deadline.Format(dateLayout)
		out.Deadline = &deadline
	}
	return out
}

func fromRows(rows []sqlconfig.SavingsGoal) []SavingsGoal {
	out := make([]SavingsGoal, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
