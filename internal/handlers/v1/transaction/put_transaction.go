package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// UpdateTransactionBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied, including zero values.
type UpdateTransactionBody struct {
	TransactionID   int64   `json:"transaction_id" required:"true" doc:"Transaction id to update"`
	Type            *string `json:"type,omitempty" enum:"income,expense" doc:"New ledger side"`
	ReferenceID     *int64  `json:"reference_id,omitempty" doc:"New referenced row id"`
	Amount          *string `json:"amount,omitempty" doc:"New decimal amount, must be greater than zero"`
	TransactionDate *string `json:"transaction_date,omitempty" doc:"New date, YYYY-MM-DD"`
}

// UpdateTransactionsInput is the Huma input for batch-updating transaction records.
type UpdateTransactionsInput struct {
	Body struct {
		Transactions []UpdateTransactionBody `json:"transactions" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateTransactionsOutput is the Huma output for batch-updating transaction records.
type UpdateTransactionsOutput struct {
	Body envelope.Body[[]Transaction]
}

// transactionUpdater is the interface for updating transaction records.
type transactionUpdater interface {
	UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.TransactionUpdate) ([]sqlconfig.Transaction, error)
}

// UpdateTransactionsHandler handles PUT /api/transaction/put_transaction.
type UpdateTransactionsHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionsHandler creates a new UpdateTransactionsHandler.
func NewUpdateTransactionsHandler(svc transactionUpdater) *UpdateTransactionsHandler {
	return &UpdateTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transaction/put_transaction",
		Summary:     "Update transactions",
		Description: "Applies a batch of partial updates in one transaction.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func parseUpdateTransactionBody(body UpdateTransactionBody) (sqlconfig.TransactionUpdate, error) {
	update := sqlconfig.TransactionUpdate{TransactionID: body.TransactionID}
	if body.Type == nil && body.ReferenceID == nil && body.Amount == nil && body.TransactionDate == nil {
		return update, envelope.New(http.StatusBadRequest, "ValidationError", "no fields to update")
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+*body.Amount)
		}
		if !amount.IsPositive() {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
		}
		update.Amount = omit.From(amount)
	}
	if body.Type != nil {
		transactionType := sqlconfig.TransactionType(*body.Type)
		if transactionType != sqlconfig.TransactionTypeIncome && transactionType != sqlconfig.TransactionTypeExpense {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "type must be income or expense")
		}
		update.Type = omit.From(transactionType)
	}
	if body.ReferenceID != nil {
		update.ReferenceID = omit.From(*body.ReferenceID)
	}
	if body.TransactionDate != nil {
		transactionDate, err := time.Parse(dateLayout, *body.TransactionDate)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid transaction_date: "+*body.TransactionDate)
		}
		update.TransactionDate = omit.From(transactionDate)
	}
	return update, nil
}

func (h *UpdateTransactionsHandler) handle(ctx context.Context, input *UpdateTransactionsInput) (*UpdateTransactionsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	updates := make([]sqlconfig.TransactionUpdate, 0, len(input.Body.Transactions))
	for _, body := range input.Body.Transactions {
		update, err := parseUpdateTransactionBody(body)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	rows, err := h.TransactionService.UpdateBatch(ctx, user.UserID, updates)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more transaction records were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("updatedCount", len(rows))
	}

	return &UpdateTransactionsOutput{
		Body: envelope.OK("Transactions updated successfully.", fromRows(rows)),
	}, nil
}
