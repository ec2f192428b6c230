package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteTransactionInput is the Huma input for deleting one transaction record.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id to delete"`
}

// DeleteTransactionOutput is the Huma output for deleting one transaction record.
type DeleteTransactionOutput struct {
	Body envelope.Body[int64]
}

// transactionDeleter is the interface for deleting transaction records.
type transactionDeleter interface {
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// DeleteTransactionHandler handles DELETE /api/transaction/delete_transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transaction/delete_transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes one transaction record. A missing id counts zero rows, not an error.",
		Tags:        []string{"Transaction"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.TransactionService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction record", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteTransactionOutput{
		Body: envelope.OK("Transaction deleted successfully.", affected),
	}, nil
}
