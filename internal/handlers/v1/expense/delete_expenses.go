package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteExpensesInput is the Huma input for batch-deleting expense records.
type DeleteExpensesInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Expense ids to delete"`
}

// DeleteExpensesOutput is the Huma output for batch-deleting expense records.
type DeleteExpensesOutput struct {
	Body envelope.Body[int64]
}

// DeleteExpensesHandler handles DELETE /api/expense/delete_expenses.
type DeleteExpensesHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpensesHandler creates a new DeleteExpensesHandler.
func NewDeleteExpensesHandler(svc expenseDeleter) *DeleteExpensesHandler {
	return &DeleteExpensesHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expenses",
		Method:      http.MethodDelete,
		Path:        "/api/expense/delete_expenses",
		Summary:     "Delete expenses",
		Description: "Deletes the caller's expense records matching the given ids.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func (h *DeleteExpensesHandler) handle(ctx context.Context, input *DeleteExpensesInput) (*DeleteExpensesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.ExpenseService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete expense records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteExpensesOutput{
		Body: envelope.OK("Expenses deleted successfully.", affected),
	}, nil
}
