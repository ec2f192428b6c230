package budget

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

// CreateBudgetBody is one budget record in a create request.
type CreateBudgetBody struct {
	Category  string `json:"category" required:"true" minLength:"1" doc:"Spending category the budget covers"`
	Amount    string `json:"amount" required:"true" doc:"Decimal amount, must be greater than zero"`
	StartDate string `json:"start_date" required:"true" doc:"First day the budget applies, YYYY-MM-DD"`
	EndDate   string `json:"end_date" required:"true" doc:"Last day the budget applies, YYYY-MM-DD"`
}

// CreateBudgetsInput is the Huma input for batch-creating budget records.
type CreateBudgetsInput struct {
	Body struct {
		Budgets []CreateBudgetBody `json:"budgets" required:"true" minItems:"1" doc:"Records to insert"`
	}
}

// CreateBudgetsOutput is the Huma output for batch-creating budget records.
type CreateBudgetsOutput struct {
	Status int
	Body   envelope.Body[[]Budget]
}

// budgetCreator is the interface for creating budget records.
type budgetCreator interface {
	CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.BudgetCreate) ([]sqlconfig.Budget, error)
}

// CreateBudgetsHandler handles POST /api/budget/post_budget.
type CreateBudgetsHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetsHandler creates a new CreateBudgetsHandler.
func NewCreateBudgetsHandler(svc budgetCreator) *CreateBudgetsHandler {
	return &CreateBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-budget",
		Method:      http.MethodPost,
		Path:        "/api/budget/post_budget",
		Summary:     "Create budgets",
		Description: "Inserts a batch of budget records in one transaction.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func parseCreateBudgetBody(body CreateBudgetBody) (sqlconfig.BudgetCreate, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return sqlconfig.BudgetCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+body.Amount)
	}
	if !amount.IsPositive() {
		return sqlconfig.BudgetCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
	}
	startDate, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		return sqlconfig.BudgetCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid start_date: "+body.StartDate)
	}
	endDate, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		return sqlconfig.BudgetCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid end_date: "+body.EndDate)
	}
	if endDate.Before(startDate) {
		return sqlconfig.BudgetCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "end_date must not be before start_date")
	}
	return sqlconfig.BudgetCreate{
		Category:  body.Category,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func (h *CreateBudgetsHandler) handle(ctx context.Context, input *CreateBudgetsInput) (*CreateBudgetsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	creates := make([]sqlconfig.BudgetCreate, 0, len(input.Body.Budgets))
	for _, body := range input.Body.Budgets {
		create, err := parseCreateBudgetBody(body)
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}

	rows, err := h.BudgetService.CreateBatch(ctx, user.UserID, creates)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateBudgetsOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Budgets created successfully.", fromRows(rows)),
	}, nil
}
