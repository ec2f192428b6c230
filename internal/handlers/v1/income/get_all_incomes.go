package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetAllIncomesInput is the Huma input for listing all income records.
type GetAllIncomesInput struct{}

// GetAllIncomesOutput is the Huma output for listing all income records.
type GetAllIncomesOutput struct {
	Body envelope.Body[[]Income]
}

// incomeLister is the interface for listing all of a user's income records.
type incomeLister interface {
	ListAll(ctx context.Context, userID int64) ([]sqlconfig.Income, error)
}

// GetAllIncomesHandler handles GET /api/income/get_all_incomes.
type GetAllIncomesHandler struct {
	IncomeService incomeLister
}

// NewGetAllIncomesHandler creates a new GetAllIncomesHandler.
func NewGetAllIncomesHandler(svc incomeLister) *GetAllIncomesHandler {
	return &GetAllIncomesHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-incomes",
		Method:      http.MethodGet,
		Path:        "/api/income/get_all_incomes",
		Summary:     "List all incomes",
		Description: "Returns every income record owned by the caller.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *GetAllIncomesHandler) handle(ctx context.Context, input *GetAllIncomesInput) (*GetAllIncomesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.IncomeService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list income records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("incomeCount", len(rows))
	}

	return &GetAllIncomesOutput{
		Body: envelope.OK("Incomes fetched successfully.", fromRows(rows)),
	}, nil
}
