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

// GetAllBudgetsInput is the Huma input for listing all budget records.
type GetAllBudgetsInput struct{}

// GetAllBudgetsOutput is the Huma output for listing all budget records.
type GetAllBudgetsOutput struct {
	Body envelope.Body[[]Budget]
}

// budgetLister is the interface for listing all of a user's budget records.
type budgetLister interface {
	ListAll(ctx context.Context, userID int64) ([]sqlconfig.Budget, error)
}

// GetAllBudgetsHandler handles GET /api/budget/get_all_budgets.
type GetAllBudgetsHandler struct {
	BudgetService budgetLister
}

// NewGetAllBudgetsHandler creates a new GetAllBudgetsHandler.
func NewGetAllBudgetsHandler(svc budgetLister) *GetAllBudgetsHandler {
	return &GetAllBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budget/get_all_budgets",
		Summary:     "List all budgets",
		Description: "Returns every budget record owned by the caller.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetAllBudgetsHandler) handle(ctx context.Context, input *GetAllBudgetsInput) (*GetAllBudgetsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.BudgetService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budget records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetCount", len(rows))
	}

	return &GetAllBudgetsOutput{
		Body: envelope.OK("Budgets fetched successfully.", fromRows(rows)),
	}, nil
}
