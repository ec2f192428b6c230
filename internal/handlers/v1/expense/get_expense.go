package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetExpenseInput is the Huma input for fetching one expense record.
type GetExpenseInput struct {
	ID int64 `path:"id" doc:"Expense id to fetch"`
}

// GetExpenseOutput is the Huma output for fetching one expense record.
type GetExpenseOutput struct {
	Body envelope.Body[Expense]
}

// GetExpenseHandler handles GET /api/expense/get_expense/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseFetcher
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseFetcher) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/api/expense/get_expense/{id}",
		Summary:     "Get one expense",
		Description: "Returns the caller's expense record with the given id.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.ExpenseService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch expense record", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "Expense record not found.")
	}

	return &GetExpenseOutput{
		Body: envelope.OK("Expense fetched successfully.", fromRow(rows[0])),
	}, nil
}
