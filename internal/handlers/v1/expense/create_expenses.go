package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateExpenseBody is one expense record in a create request.
type CreateExpenseBody struct {
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be greater than zero"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Spending category"`
	Description string `json:"description" doc:"What the money was spent on"`
	DateSpent   string `json:"date_spent" required:"true" doc:"Date the money was spent, YYYY-MM-DD"`
}

// CreateExpensesInput is the Huma input for batch-creating expense records.
type CreateExpensesInput struct {
	Body struct {
		Expenses []CreateExpenseBody `json:"expenses" required:"true" minItems:"1" doc:"Records to insert"`
	}
}

// CreateExpensesOutput is the Huma output for batch-creating expense records.
type CreateExpensesOutput struct {
	Status int
	Body   envelope.Body[[]Expense]
}

// expenseCreator is the interface for creating expense records.
type expenseCreator interface {
	CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.ExpenseCreate) ([]sqlconfig.Expense, error)
}

// CreateExpensesHandler handles POST /api/expense/post_expense.
type CreateExpensesHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpensesHandler creates a new CreateExpensesHandler.
func NewCreateExpensesHandler(svc expenseCreator) *CreateExpensesHandler {
	return &CreateExpensesHandler{ExpenseService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-expense",
		Method:      http.MethodPost,
		Path:        "/api/expense/post_expense",
		Summary:     "Create expenses",
		Description: "Inserts a batch of expense records in one transaction.",
		Tags:        []string{"Expense"},
	}, h.handle)
}

func parseCreateExpenseBody(body CreateExpenseBody) (sqlconfig.ExpenseCreate, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return sqlconfig.ExpenseCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+body.Amount)
	}
	if !amount.IsPositive() {
		return sqlconfig.ExpenseCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
	}
	dateSpent, err := time.Parse(dateLayout, body.DateSpent)
	if err != nil {
		return sqlconfig.ExpenseCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid date_spent: "+body.DateSpent)
	}
	return sqlconfig.ExpenseCreate{
		Amount:      amount,
		Category:    body.Category,
		Description: body.Description,
		DateSpent:   dateSpent,
	}, nil
}

func (h *CreateExpensesHandler) handle(ctx context.Context, input *CreateExpensesInput) (*CreateExpensesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	creates := make([]sqlconfig.ExpenseCreate, 0, len(input.Body.Expenses))
	for _, body := range input.Body.Expenses {
		create, err := parseCreateExpenseBody(body)
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}

	rows, err := h.ExpenseService.CreateBatch(ctx, user.UserID, creates)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create expense records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateExpensesOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Expenses created successfully.", fromRows(rows)),
	}, nil
}
