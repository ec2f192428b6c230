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

// GetTransactionsInput is the Huma input for fetching transaction records by id.
type GetTransactionsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Transaction ids to fetch"`
}

// GetTransactionsOutput is the Huma output for fetching transaction records by id.
type GetTransactionsOutput struct {
	Body envelope.Body[[]Transaction]
}

// transactionFetcher is the interface for fetching transaction records by id.
type transactionFetcher interface {
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Transaction, error)
}

// GetTransactionsHandler handles GET /api/transaction/get_transactions.
type GetTransactionsHandler struct {
	TransactionService transactionFetcher
}

// NewGetTransactionsHandler creates a new GetTransactionsHandler.
func NewGetTransactionsHandler(svc transactionFetcher) *GetTransactionsHandler {
	return &GetTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transaction/get_transactions",
		Summary:     "Get transactions by id",
		Description: "Returns the caller's transaction records matching the given ids.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func (h *GetTransactionsHandler) handle(ctx context.Context, input *GetTransactionsInput) (*GetTransactionsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.TransactionService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch transaction records", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No transaction records found for the given ids.")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	return &GetTransactionsOutput{
		Body: envelope.OK("Transactions fetched successfully.", fromRows(rows)),
	}, nil
}
