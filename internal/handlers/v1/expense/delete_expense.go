package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteExpenseInput is the Huma input for deleting one expense record.
type DeleteExpenseInput struct {
	ID int64 `path:"id" doc:"Expense id to delete"`
}

// DeleteExpenseOutput is the Huma output for deleting one expense record.
type DeleteExpenseOutput struct {
	Body envelope.Body[int64]
}

// expenseDeleter is the interface for deleting expense records.
type expenseDeleter interface {
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// DeleteExpenseHandler handles DELETE /api/expense/delete_expense/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/api/expense/delete_expense/{id}",
		Summary:     "Delete expense",
		Description: "Deletes one expense record. A missing id counts zero rows, not an error.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.ExpenseService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete expense record", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteExpenseOutput{
		Body: envelope.OK("Expense deleted successfully.", affected),
	}, nil
}
