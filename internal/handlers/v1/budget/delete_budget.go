package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteBudgetInput is the Huma input for deleting one budget record.
type DeleteBudgetInput struct {
	ID int64 `path:"id" doc:"Budget id to delete"`
}

// DeleteBudgetOutput is the Huma output for deleting one budget record.
type DeleteBudgetOutput struct {
	Body envelope.Body[int64]
}

// budgetDeleter is the interface for deleting budget records.
type budgetDeleter interface {
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// DeleteBudgetHandler handles DELETE /api/budget/delete_budget/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/api/budget/delete_budget/{id}",
		Summary:     "Delete budget",
		Description: "Deletes one budget record. A missing id counts zero rows, not an error.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.BudgetService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete budget record", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteBudgetOutput{
		Body: envelope.OK("Budget deleted successfully.", affected),
	}, nil
}
