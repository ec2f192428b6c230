package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetIncomeInput is the Huma input for fetching one income record.
type GetIncomeInput struct {
	ID int64 `path:"id" doc:"Income id to fetch"`
}

// GetIncomeOutput is the Huma output for fetching one income record.
type GetIncomeOutput struct {
	Body envelope.Body[Income]
}

// GetIncomeHandler handles GET /api/income/get_income/{id}.
type GetIncomeHandler struct {
	IncomeService incomeFetcher
}

// NewGetIncomeHandler creates a new GetIncomeHandler.
func NewGetIncomeHandler(svc incomeFetcher) *GetIncomeHandler {
	return &GetIncomeHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-income",
		Method:      http.MethodGet,
		Path:        "/api/income/get_income/{id}",
		Summary:     "Get one income",
		Description: "Returns the caller's income record with the given id.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *GetIncomeHandler) handle(ctx context.Context, input *GetIncomeInput) (*GetIncomeOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.IncomeService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch income record", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "Income record not found.")
	}

	return &GetIncomeOutput{
		Body: envelope.OK("Income fetched successfully.", fromRow(rows[0])),
	}, nil
}
