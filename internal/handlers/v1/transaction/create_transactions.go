package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateTransactionBody is one transaction record in a create request.
type CreateTransactionBody struct {
	Type            string `json:"type" required:"true" enum:"income,expense" doc:"Ledger side, income or expense"`
	ReferenceID     int64  `json:"reference_id" required:"true" doc:"Id of the income or expense row this entry mirrors"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount, must be greater than zero"`
	TransactionDate string `json:"transaction_date" required:"true" doc:"Date of the transaction, YYYY-MM-DD"`
}

// CreateTransactionsInput is the Huma input for batch-creating transaction records.
type CreateTransactionsInput struct {
	Body struct {
		Transactions []CreateTransactionBody `json:"transactions" required:"true" minItems:"1" doc:"Records to insert"`
	}
}

// CreateTransactionsOutput is the Huma output for batch-creating transaction records.
type CreateTransactionsOutput struct {
	Status int
	Body   envelope.Body[[]Transaction]
}

// transactionCreator is the interface for creating transaction records.
type transactionCreator interface {
	CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.TransactionCreate) ([]sqlconfig.Transaction, error)
}

// CreateTransactionsHandler handles POST /api/transaction/post_transaction.
type CreateTransactionsHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionsHandler creates a new CreateTransactionsHandler.
func NewCreateTransactionsHandler(svc transactionCreator) *CreateTransactionsHandler {
	return &CreateTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transaction/post_transaction",
		Summary:     "Create transactions",
		Description: "Inserts a batch of transaction records in one transaction.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func parseCreateTransactionBody(body CreateTransactionBody) (sqlconfig.TransactionCreate, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return sqlconfig.TransactionCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+body.Amount)
	}
	if !amount.IsPositive() {
		return sqlconfig.TransactionCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
	}
	transactionType := sqlconfig.TransactionType(body.Type)
	if transactionType != sqlconfig.TransactionTypeIncome && transactionType != sqlconfig.TransactionTypeExpense {
		return sqlconfig.TransactionCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "type must be income or expense")
	}
	transactionDate, err := time.Parse(dateLayout, body.TransactionDate)
	if err != nil {
		return sqlconfig.TransactionCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid transaction_date: "+body.TransactionDate)
	}
	return sqlconfig.TransactionCreate{
		Type:            transactionType,
		ReferenceID:     body.ReferenceID,
		Amount:          amount,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionsHandler) handle(ctx context.Context, input *CreateTransactionsInput) (*CreateTransactionsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	creates := make([]sqlconfig.TransactionCreate, 0, len(input.Body.Transactions))
	for _, body := range input.Body.Transactions {
		create, err := parseCreateTransactionBody(body)
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}

	rows, err := h.TransactionService.CreateBatch(ctx, user.UserID, creates)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateTransactionsOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Transactions created successfully.", fromRows(rows)),
	}, nil
}
