package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
)

// DeleteIncomeInput is the Huma input for deleting one income record.
type DeleteIncomeInput struct {
	ID int64 `path:"id" doc:"Income id to delete"`
}

// DeleteIncomeOutput is the Huma output for deleting one income record.
type DeleteIncomeOutput struct {
	Body envelope.Body[int64]
}

// incomeDeleter is the interface for deleting income records.
type incomeDeleter interface {
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
}

// DeleteIncomeHandler handles DELETE /api/income/delete_income/{id}.
type DeleteIncomeHandler struct {
	IncomeService incomeDeleter
}

// NewDeleteIncomeHandler creates a new DeleteIncomeHandler.
func NewDeleteIncomeHandler(svc incomeDeleter) *DeleteIncomeHandler {
	return &DeleteIncomeHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-income",
		Method:      http.MethodDelete,
		Path:        "/api/income/delete_income/{id}",
		Summary:     "Delete income",
		Description: "Deletes one income record. A missing id counts zero rows, not an error.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *DeleteIncomeHandler) handle(ctx context.Context, input *DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.IncomeService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete income record", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", affected)
	}

	return &DeleteIncomeOutput{
		Body: envelope.OK("Income deleted successfully.", affected),
	}, nil
}
