package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id to fetch"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body envelope.Body[Transaction]
}

// GetTransactionHandler handles GET /api/transaction/get_transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionFetcher
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionFetcher) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transaction/get_transaction/{id}",
		Summary:     "Get one transaction",
		Description: "Returns the caller's transaction with the given id.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.TransactionService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch transaction", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "Transaction not found.")
	}

	return &GetTransactionOutput{
		Body: envelope.OK("Transaction fetched successfully.", fromRow(rows[0])),
	}, nil
}
