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

// GetAllExpensesInput is the Huma input for listing all expense records.
type GetAllExpensesInput struct{}

// GetAllExpensesOutput is the Huma output for listing all expense records.
type GetAllExpensesOutput struct {
	Body envelope.Body[[]Expense]
}

// expenseLister is the interface for listing all of a user's expense records.
type expenseLister interface {
	ListAll(ctx context.Context, userID int64) ([]sqlconfig.Expense, error)
}

// GetAllExpensesHandler handles GET /api/expense/get_all_expenses.
type GetAllExpensesHandler struct {
	ExpenseService expenseLister
}

// NewGetAllExpensesHandler creates a new GetAllExpensesHandler.
func NewGetAllExpensesHandler(svc expenseLister) *GetAllExpensesHandler {
	return &GetAllExpensesHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-expenses",
		Method:      http.MethodGet,
		Path:        "/api/expense/get_all_expenses",
		Summary:     "List all expenses",
		Description: "Returns every expense record owned by the caller.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func (h *GetAllExpensesHandler) handle(ctx context.Context, input *GetAllExpensesInput) (*GetAllExpensesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.ExpenseService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list expense records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(rows))
	}

	return &GetAllExpensesOutput{
		Body: envelope.OK("Expenses fetched successfully.", fromRows(rows)),
	}, nil
}
