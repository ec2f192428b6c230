package savingsgoals

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetSavingsGoalInput is the Huma input for fetching one savings goal.
type GetSavingsGoalInput struct {
	ID int64 `path:"id" doc:"Goal id to fetch"`
}

// GetSavingsGoalOutput is the Huma output for fetching one savings goal.
type GetSavingsGoalOutput struct {
	Body envelope.Body[SavingsGoal]
}

// GetSavingsGoalHandler handles GET /api/savings_goals/get_goal/{id}.
type GetSavingsGoalHandler struct {
	SavingsGoalService savingsGoalFetcher
}

// NewGetSavingsGoalHandler creates a new GetSavingsGoalHandler.
func NewGetSavingsGoalHandler(svc savingsGoalFetcher) *GetSavingsGoalHandler {
	return &GetSavingsGoalHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetSavingsGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/api/savings_goals/get_goal/{id}",
		Summary:     "Get one savings goal",
		Description: "Returns the caller's savings goal with the given id.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func (h *GetSavingsGoalHandler) handle(ctx context.Context, input *GetSavingsGoalInput) (*GetSavingsGoalOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.SavingsGoalService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch savings goal", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "Savings goal not found.")
	}

	return &GetSavingsGoalOutput{
		Body: envelope.OK("Savings goal fetched successfully.", fromRow(rows[0])),
	}, nil
}
