// Package expense exposes the /api/expense endpoints.
package expense

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// dateLayout is the wire format for expense dates.
const dateLayout = "2006-01-02"

// Expense is the API response model for an expense record.
type Expense struct {
	ExpenseID   int64  `json:"expense_id" doc:"Expense id"`
	UserID      int64  `json:"user_id" doc:"Owning user id"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Spending category"`
	Description string `json:"description" doc:"What the money was spent on"`
	DateSpent   string `json:"date_spent" doc:"Date the money was spent, YYYY-MM-DD"`
	CreatedAt   string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.Expense) Expense {
	return Expense{
		ExpenseID:   row.ExpenseID,
		UserID:      row.UserID,
		Amount:      row.Amount.String(),
		Category:    row.Category,
		Description: row.Description,
		DateSpent:   row.DateSpent.Format(dateLayout),
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}

func fromRows(rows []sqlconfig.Expense) []Expense {
	out := make([]Expense, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
