package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteBudgetsInput is the Huma input for batch-deleting budget records.
type DeleteBudgetsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Budget ids to delete"`
}

// DeleteBudgetsOutput is the Huma output for batch-deleting budget records.
type DeleteBudgetsOutput struct {
	Body envelope.Body[int64]
}

// DeleteBudgetsHandler handles DELETE /api/budget/delete_budgets.
type DeleteBudgetsHandler struct {
	BudgetService budgetDeleter
}

// NewDeleteBudgetsHandler creates a new DeleteBudgetsHandler.
func NewDeleteBudgetsHandler(svc budgetDeleter) *DeleteBudgetsHandler {
	return &DeleteBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budgets",
		Method:      http.MethodDelete,
		Path:        "/api/budget/delete_budgets",
		Summary:     "Delete budgets",
		Description: "Deletes the caller's budget records matching the given ids.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *DeleteBudgetsHandler) handle(ctx context.Context, input *DeleteBudgetsInput) (*DeleteBudgetsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.BudgetService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete budget records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteBudgetsOutput{
		Body: envelope.OK("Budgets deleted successfully.", affected),
	}, nil
}
