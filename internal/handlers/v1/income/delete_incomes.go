package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteIncomesInput is the Huma input for batch-deleting income records.
type DeleteIncomesInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Income ids to delete"`
}

// DeleteIncomesOutput is the Huma output for batch-deleting income records.
type DeleteIncomesOutput struct {
	Body envelope.Body[int64]
}

// DeleteIncomesHandler handles DELETE /api/income/delete_incomes.
type DeleteIncomesHandler struct {
	IncomeService incomeDeleter
}

// NewDeleteIncomesHandler creates a new DeleteIncomesHandler.
func NewDeleteIncomesHandler(svc incomeDeleter) *DeleteIncomesHandler {
	return &DeleteIncomesHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-incomes",
		Method:      http.MethodDelete,
		Path:        "/api/income/delete_incomes",
		Summary:     "Delete incomes",
		Description: "Deletes the caller's income records matching the given ids.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *DeleteIncomesHandler) handle(ctx context.Context, input *DeleteIncomesInput) (*DeleteIncomesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.IncomeService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete income records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteIncomesOutput{
		Body: envelope.OK("Incomes deleted successfully.", affected),
	}, nil
}
