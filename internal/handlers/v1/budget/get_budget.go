package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetBudgetInput is the Huma input for fetching one budget.
type GetBudgetInput struct {
	ID int64 `path:"id" doc:"Budget id to fetch"`
}

// GetBudgetOutput is the Huma output for fetching one budget.
type GetBudgetOutput struct {
	Body envelope.Body[Budget]
}

// GetBudgetHandler handles GET /api/budget/get_budget/{id}.
type GetBudgetHandler struct {
	BudgetService budgetFetcher
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetFetcher) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/api/budget/get_budget/{id}",
		Summary:     "Get one budget",
		Description: "Returns the caller's budget with the given id.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.BudgetService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch budget", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "Budget not found.")
	}

	return &GetBudgetOutput{
		Body: envelope.OK("Budget fetched successfully.", fromRow(rows[0])),
	}, nil
}
