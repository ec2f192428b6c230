package savingsgoals

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetAllSavingsGoalsInput is the Huma input for listing all savings goal records.
type GetAllSavingsGoalsInput struct{}

// GetAllSavingsGoalsOutput is the Huma output for listing all savings goal records.
type GetAllSavingsGoalsOutput struct {
	Body envelope.Body[[]SavingsGoal]
}

// savingsGoalLister is the interface for listing all of a user's savings goal records.
type savingsGoalLister interface {
	ListAll(ctx context.Context, userID int64) ([]sqlconfig.SavingsGoal, error)
}

// GetAllSavingsGoalsHandler handles GET /api/savings_goals/get_all_goals.
type GetAllSavingsGoalsHandler struct {
	SavingsGoalService savingsGoalLister
}

// NewGetAllSavingsGoalsHandler creates a new GetAllSavingsGoalsHandler.
func NewGetAllSavingsGoalsHandler(svc savingsGoalLister) *GetAllSavingsGoalsHandler {
	return &GetAllSavingsGoalsHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllSavingsGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-goals",
		Method:      http.MethodGet,
		Path:        "/api/savings_goals/get_all_goals",
		Summary:     "List all savings goals",
		Description: "Returns every savings goal record owned by the caller.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func (h *GetAllSavingsGoalsHandler) handle(ctx context.Context, input *GetAllSavingsGoalsInput) (*GetAllSavingsGoalsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.SavingsGoalService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list savings goal records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("savingsGoalCount", len(rows))
	}

	return &GetAllSavingsGoalsOutput{
		Body: envelope.OK("Savings goals fetched successfully.", fromRows(rows)),
	}, nil
}
