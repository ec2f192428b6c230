package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetBudgetsInput is the Huma input for fetching budget records by id.
type GetBudgetsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Budget ids to fetch"`
}

// GetBudgetsOutput is the Huma output for fetching budget records by id.
type GetBudgetsOutput struct {
	Body envelope.Body[[]Budget]
}

// budgetFetcher is the interface for fetching budget records by id.
type budgetFetcher interface {
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Budget, error)
}

// GetBudgetsHandler handles GET /api/budget/get_budgets.
type GetBudgetsHandler struct {
	BudgetService budgetFetcher
}

// NewGetBudgetsHandler creates a new GetBudgetsHandler.
func NewGetBudgetsHandler(svc budgetFetcher) *GetBudgetsHandler {
	return &GetBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budget/get_budgets",
		Summary:     "Get budgets by id",
		Description: "Returns the caller's budget records matching the given ids.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetBudgetsHandler) handle(ctx context.Context, input *GetBudgetsInput) (*GetBudgetsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.BudgetService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch budget records", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No budget records found for the given ids.")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetCount", len(rows))
	}

	return &GetBudgetsOutput{
		Body: envelope.OK("Budgets fetched successfully.", fromRows(rows)),
	}, nil
}
