package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteTransactionsInput is the Huma input for batch-deleting transaction records.
type DeleteTransactionsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Transaction ids to delete"`
}

// DeleteTransactionsOutput is the Huma output for batch-deleting transaction records.
type DeleteTransactionsOutput struct {
	Body envelope.Body[int64]
}

// DeleteTransactionsHandler handles DELETE /api/transaction/delete_transactions.
type DeleteTransactionsHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionsHandler creates a new DeleteTransactionsHandler.
func NewDeleteTransactionsHandler(svc transactionDeleter) *DeleteTransactionsHandler {
	return &DeleteTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transactions",
		Method:      http.MethodDelete,
		Path:        "/api/transaction/delete_transactions",
		Summary:     "Delete transactions",
		Description: "Deletes the caller's transaction records matching the given ids.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func (h *DeleteTransactionsHandler) handle(ctx context.Context, input *DeleteTransactionsInput) (*DeleteTransactionsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.TransactionService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteTransactionsOutput{
		Body: envelope.OK("Transactions deleted successfully.", affected),
	}, nil
}
