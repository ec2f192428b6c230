// Package transaction exposes the /api/transaction endpoints. Transactions
// are a ledger the client records alongside income and expense writes; the
// server stores them as given and never derives them.
package transaction

import (
	"time"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction record.
type Transaction struct {
	TransactionID   int64  `json:"transaction_id" doc:"Transaction id"`
	UserID          int64  `json:"user_id" doc:"Owning user id"`
	Type            string `json:"type" doc:"Ledger side, income or expense"`
	ReferenceID     int64  `json:"reference_id" doc:"Id of the income or expense row this entry mirrors"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	TransactionDate string `json:"transaction_date" doc:"Date of the transaction, YYYY-MM-DD"`
	CreatedAt       string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromRow(row sqlconfig.Transaction) Transaction {
	return Transaction{
		TransactionID:   row.TransactionID,
		UserID:          row.UserID,
		Type:            string(row.Type),
		ReferenceID:     row.ReferenceID,
		Amount:          row.Amount.String(),
		TransactionDate: row.TransactionDate.Format(dateLayout),
		CreatedAt:       row.CreatedAt.Format(time.RFC3339),
	}
}

func fromRows(rows []sqlconfig.Transaction) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
