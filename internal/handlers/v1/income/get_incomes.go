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

// GetIncomesInput is the Huma input for fetching income records by id.
type GetIncomesInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Income ids to fetch"`
}

// GetIncomesOutput is the Huma output for fetching income records by id.
type GetIncomesOutput struct {
	Body envelope.Body[[]Income]
}

// incomeFetcher is the interface for fetching income records by id.
type incomeFetcher interface {
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Income, error)
}

// GetIncomesHandler handles GET /api/income/get_incomes.
type GetIncomesHandler struct {
	IncomeService incomeFetcher
}

// NewGetIncomesHandler creates a new GetIncomesHandler.
func NewGetIncomesHandler(svc incomeFetcher) *GetIncomesHandler {
	return &GetIncomesHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-incomes",
		Method:      http.MethodGet,
		Path:        "/api/income/get_incomes",
		Summary:     "Get incomes by id",
		Description: "Returns the caller's income records matching the given ids.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *GetIncomesHandler) handle(ctx context.Context, input *GetIncomesInput) (*GetIncomesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.IncomeService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch income records", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No income records found for the given ids.")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("incomeCount", len(rows))
	}

	return &GetIncomesOutput{
		Body: envelope.OK("Incomes fetched successfully.", fromRows(rows)),
	}, nil
}
