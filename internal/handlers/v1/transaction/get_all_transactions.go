package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetAllTransactionsInput is the Huma input for listing all transaction records.
type GetAllTransactionsInput struct{}

// GetAllTransactionsOutput is the Huma output for listing all transaction records.
type GetAllTransactionsOutput struct {
	Body envelope.Body[[]Transaction]
}

// transactionLister is the interface for listing all of a user's transaction records.
type transactionLister interface {
	ListAll(ctx context.Context, userID int64) ([]sqlconfig.Transaction, error)
}

// GetAllTransactionsHandler handles GET /api/transaction/get_all_transactions.
type GetAllTransactionsHandler struct {
	TransactionService transactionLister
}

// NewGetAllTransactionsHandler creates a new GetAllTransactionsHandler.
func NewGetAllTransactionsHandler(svc transactionLister) *GetAllTransactionsHandler {
	return &GetAllTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transaction/get_all_transactions",
		Summary:     "List all transactions",
		Description: "Returns every transaction record owned by the caller.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func (h *GetAllTransactionsHandler) handle(ctx context.Context, input *GetAllTransactionsInput) (*GetAllTransactionsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.TransactionService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transaction records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	return &GetAllTransactionsOutput{
		Body: envelope.OK("Transactions fetched successfully.", fromRows(rows)),
	}, nil
}
