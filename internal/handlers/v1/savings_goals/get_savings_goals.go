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

// GetSavingsGoalsInput is the Huma input for fetching savings goal records by id.
type GetSavingsGoalsInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Savings goal ids to fetch"`
}

// GetSavingsGoalsOutput is the Huma output for fetching savings goal records by id.
type GetSavingsGoalsOutput struct {
	Body envelope.Body[[]SavingsGoal]
}

// savingsGoalFetcher is the interface for fetching savings goal records by id.
type savingsGoalFetcher interface {
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.SavingsGoal, error)
}

// GetSavingsGoalsHandler handles GET /api/savings_goals/get_goals.
type GetSavingsGoalsHandler struct {
	SavingsGoalService savingsGoalFetcher
}

// NewGetSavingsGoalsHandler creates a new GetSavingsGoalsHandler.
func NewGetSavingsGoalsHandler(svc savingsGoalFetcher) *GetSavingsGoalsHandler {
	return &GetSavingsGoalsHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetSavingsGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goals",
		Method:      http.MethodGet,
		Path:        "/api/savings_goals/get_goals",
		Summary:     "Get savings goals by id",
		Description: "Returns the caller's savings goal records matching the given ids.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func (h *GetSavingsGoalsHandler) handle(ctx context.Context, input *GetSavingsGoalsInput) (*GetSavingsGoalsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.SavingsGoalService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch savings goal records", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No savings goal records found for the given ids.")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("savingsGoalCount", len(rows))
	}

	return &GetSavingsGoalsOutput{
		Body: envelope.OK("Savings goals fetched successfully.", fromRows(rows)),
	}, nil
}
