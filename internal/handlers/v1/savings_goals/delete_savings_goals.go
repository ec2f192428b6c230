package savingsgoals

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteSavingsGoalsInput is the Huma input for batch-deleting savings goal records.
type DeleteSavingsGoalsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Savings goal ids to delete"`
}

// DeleteSavingsGoalsOutput is the Huma output for batch-deleting savings goal records.
type DeleteSavingsGoalsOutput struct {
	Body envelope.Body[int64]
}

// DeleteSavingsGoalsHandler handles DELETE /api/savings_goals/delete_goals.
type DeleteSavingsGoalsHandler struct {
	SavingsGoalService savingsGoalDeleter
}

// NewDeleteSavingsGoalsHandler creates a new DeleteSavingsGoalsHandler.
func NewDeleteSavingsGoalsHandler(svc savingsGoalDeleter) *DeleteSavingsGoalsHandler {
	return &DeleteSavingsGoalsHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteSavingsGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-goals",
		Method:      http.MethodDelete,
		Path:        "/api/savings_goals/delete_goals",
		Summary:     "Delete savings goals",
		Description: "Deletes the caller's savings goal records matching the given ids.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func (h *DeleteSavingsGoalsHandler) handle(ctx context.Context, input *DeleteSavingsGoalsInput) (*DeleteSavingsGoalsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.SavingsGoalService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete savings goal records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteSavingsGoalsOutput{
		Body: envelope.OK("Savings goals deleted successfully.", affected),
	}, nil
}
