package savingsgoals

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteSavingsGoalInput is the Huma input for deleting one savings goal record.
type DeleteSavingsGoalInput struct {
	ID int64 `path:"id" doc:"Savings goal id to delete"`
}

// DeleteSavingsGoalOutput is the Huma output for deleting one savings goal record.
type DeleteSavingsGoalOutput struct {
	Body envelope.Body[int64]
}

// savingsGoalDeleter is the interface for deleting savings goal records.
type savingsGoalDeleter interface {
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// DeleteSavingsGoalHandler handles DELETE /api/savings_goals/delete_goal/{id}.
type DeleteSavingsGoalHandler struct {
	SavingsGoalService savingsGoalDeleter
}

// NewDeleteSavingsGoalHandler creates a new DeleteSavingsGoalHandler.
func NewDeleteSavingsGoalHandler(svc savingsGoalDeleter) *DeleteSavingsGoalHandler {
	return &DeleteSavingsGoalHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteSavingsGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-goal",
		Method:      http.MethodDelete,
		Path:        "/api/savings_goals/delete_goal/{id}",
		Summary:     "Delete savings goal",
		Description: "Deletes one savings goal record. A missing id counts zero rows, not an error.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func (h *DeleteSavingsGoalHandler) handle(ctx context.Context, input *DeleteSavingsGoalInput) (*DeleteSavingsGoalOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.SavingsGoalService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete savings goal record", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteSavingsGoalOutput{
		Body: envelope.OK("Savings goal deleted successfully.", affected),
	}, nil
}
