package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetExpensesInput is the Huma input for fetching expense records by id.
type GetExpensesInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"Expense ids to fetch"`
}

// GetExpensesOutput is the Huma output for fetching expense records by id.
type GetExpensesOutput struct {
	Body envelope.Body[[]Expense]
}

// expenseFetcher is the interface for fetching expense records by id.
type expenseFetcher interface {
	ListByIDs(ctx context.Context, userID int64, ids []int64) ([]sqlconfig.Expense, error)
}

// GetExpensesHandler handles GET /api/expense/get_expenses.
type GetExpensesHandler struct {
	ExpenseService expenseFetcher
}

// NewGetExpensesHandler creates a new GetExpensesHandler.
func NewGetExpensesHandler(svc expenseFetcher) *GetExpensesHandler {
	return &GetExpensesHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expenses",
		Method:      http.MethodGet,
		Path:        "/api/expense/get_expenses",
		Summary:     "Get expenses by id",
		Description: "Returns the caller's expense records matching the given ids.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func (h *GetExpensesHandler) handle(ctx context.Context, input *GetExpensesInput) (*GetExpensesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.ExpenseService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch expense records", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No expense records found for the given ids.")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(rows))
	}

	return &GetExpensesOutput{
		Body: envelope.OK("Expenses fetched successfully.", fromRows(rows)),
	}, nil
}
