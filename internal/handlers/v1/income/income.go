// Package income exposes the /api/income endpoints.
package income

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// dateLayout is the wire format for income dates.
const dateLayout = "2006-01-02"

// Income is the API response model for an income record.
type Income struct {
	IncomeID     int64  `json:"income_id" doc:"Income id"`
	UserID       int64  `json:"user_id" doc:"Owning user id"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Source       string `json:"source" doc:"Where the money came from"`
	DateReceived string `json:"date_received" doc:"Date the money arrived, YYYY-MM-DD"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.Income) Income {
	return Income{
		IncomeID:     row.IncomeID,
		UserID:       row.UserID,
		Amount:       row.Amount.String(),
		Source:       row.Source,
		DateReceived: row.DateReceived.Format(dateLayout),
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
}

func fromRows(rows []sqlconfig.Income) []Income {
	out := make([]Income, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
