// Package budget exposes the /api/budget endpoints.
package budget

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// dateLayout is the wire format for budget dates.
const dateLayout = "2006-01-02"

// Budget is the API response model for a budget record.
type Budget struct {
	BudgetID  int64  `json:"budget_id" doc:"Budget id"`
	UserID    int64  `json:"user_id" doc:"Owning user id"`
	Category  string `json:"category" doc:"Spending category the budget covers"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	StartDate string `json:"start_date" doc:"First day the budget applies, YYYY-MM-DD"`
	EndDate   string `json:"end_date" doc:"Last day the budget applies, YYYY-MM-DD"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.Budget) Budget {
	return Budget{
		BudgetID:  row.BudgetID,
		UserID:    row.UserID,
		Category:  row.Category,
		Amount:    row.Amount.String(),
		StartDate: row.StartDate.Format(dateLayout),
		EndDate:   row.EndDate.Format(dateLayout),
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}

func fromRows(rows []sqlconfig.Budget) []Budget {
	out := make([]Budget, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
