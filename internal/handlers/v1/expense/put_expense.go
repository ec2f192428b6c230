package expense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// UpdateExpenseBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied, including zero values.
type UpdateExpenseBody struct {
	ExpenseID   int64   `json:"expense_id" required:"true" doc:"Expense id to update"`
	Amount      *string `json:"amount,omitempty" doc:"New decimal amount, must be greater than zero"`
	Category    *string `json:"category,omitempty" doc:"New category"`
	Description *string `json:"description,omitempty" doc:"New description"`
	DateSpent   *string `json:"date_spent,omitempty" doc:"New date, YYYY-MM-DD"`
}

// UpdateExpensesInput is the Huma input for batch-updating expense records.
type UpdateExpensesInput struct {
	Body struct {
		Expenses []UpdateExpenseBody `json:"expenses" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateExpensesOutput is the Huma output for batch-updating expense records.
type UpdateExpensesOutput struct {
	Body envelope.Body[[]Expense]
}

// expenseUpdater is the interface for updating expense records.
type expenseUpdater interface {
	UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.ExpenseUpdate) ([]sqlconfig.Expense, error)
}

// UpdateExpensesHandler handles PUT /api/expense/put_expense.
type UpdateExpensesHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpensesHandler creates a new UpdateExpensesHandler.
func NewUpdateExpensesHandler(svc expenseUpdater) *UpdateExpensesHandler {
	return &UpdateExpensesHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-expense",
		Method:      http.MethodPut,
		Path:        "/api/expense/put_expense",
		Summary:     "Update expenses",
		Description: "Applies a batch of partial updates in one transaction.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func parseUpdateExpenseBody(body UpdateExpenseBody) (sqlconfig.ExpenseUpdate, error) {
	update := sqlconfig.ExpenseUpdate{ExpenseID: body.ExpenseID}
	if body.Amount == nil && body.Category == nil && body.Description == nil && body.DateSpent == nil {
		return update, envelope.New(http.StatusBadRequest, "ValidationError", "no fields to update")
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+*body.Amount)
		}
		if !amount.IsPositive() {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
		}
		update.Amount = omit.From(amount)
	}
	if body.Category != nil {
		update.Category = omit.From(*body.Category)
	}
	if body.Description != nil {
		update.Description = omit.From(*body.Description)
	}
	if body.DateSpent != nil {
		dateSpent, err := time.Parse(dateLayout, *body.DateSpent)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid date_spent: "+*body.DateSpent)
		}
		update.DateSpent = omit.From(dateSpent)
	}
	return update, nil
}

func (h *UpdateExpensesHandler) handle(ctx context.Context, input *UpdateExpensesInput) (*UpdateExpensesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	updates := make([]sqlconfig.ExpenseUpdate, 0, len(input.Body.Expenses))
	for _, body := range input.Body.Expenses {
		update, err := parseUpdateExpenseBody(body)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	rows, err := h.ExpenseService.UpdateBatch(ctx, user.UserID, updates)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more expense records were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update expense records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("updatedCount", len(rows))
	}

	return &UpdateExpensesOutput{
		Body: envelope.OK("Expenses updated successfully.", fromRows(rows)),
	}, nil
}
