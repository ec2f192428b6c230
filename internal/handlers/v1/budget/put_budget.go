package budget

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

// UpdateBudgetBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied, including zero values.
type UpdateBudgetBody struct {
	BudgetID  int64   `json:"budget_id" required:"true" doc:"Budget id to update"`
	Category  *string `json:"category,omitempty" doc:"New category"`
	Amount    *string `json:"amount,omitempty" doc:"New decimal amount, must be greater than zero"`
	StartDate *string `json:"start_date,omitempty" doc:"New start date, YYYY-MM-DD"`
	EndDate   *string `json:"end_date,omitempty" doc:"New end date, YYYY-MM-DD"`
}

// UpdateBudgetsInput is the Huma input for batch-updating budget records.
type UpdateBudgetsInput struct {
	Body struct {
		Budgets []UpdateBudgetBody `json:"budgets" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateBudgetsOutput is the Huma output for batch-updating budget records.
type UpdateBudgetsOutput struct {
	Body envelope.Body[[]Budget]
}

// budgetUpdater is the interface for updating budget records.
type budgetUpdater interface {
	UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.BudgetUpdate) ([]sqlconfig.Budget, error)
}

// UpdateBudgetsHandler handles PUT /api/budget/put_budget.
type UpdateBudgetsHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetsHandler creates a new UpdateBudgetsHandler.
func NewUpdateBudgetsHandler(svc budgetUpdater) *UpdateBudgetsHandler {
	return &UpdateBudgetsHandler{BudgetService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-budget",
		Method:      http.MethodPut,
		Path:        "/api/budget/put_budget",
		Summary:     "Update budgets",
		Description: "Applies a batch of partial updates in one transaction.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func parseUpdateBudgetBody(body UpdateBudgetBody) (sqlconfig.BudgetUpdate, error) {
	update := sqlconfig.BudgetUpdate{BudgetID: body.BudgetID}
	if body.Category == nil && body.Amount == nil && body.StartDate == nil && body.EndDate == nil {
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
	if body.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *body.StartDate)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid start_date: "+*body.StartDate)
		}
		update.StartDate = omit.From(startDate)
	}
	if body.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *body.EndDate)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid end_date: "+*body.EndDate)
		}
		update.EndDate = omit.From(endDate)
	}
	// When the patch moves both ends of the range, reject an inverted range
	// here. A patch moving only one end is still checked by the database
	// constraint.
	if update.StartDate.IsValue() && update.EndDate.IsValue() && update.EndDate.MustGet().Before(update.StartDate.MustGet()) {
		return update, envelope.New(http.StatusBadRequest, "ValidationError", "end_date must not be before start_date")
	}
	return update, nil
}

func (h *UpdateBudgetsHandler) handle(ctx context.Context, input *UpdateBudgetsInput) (*UpdateBudgetsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	updates := make([]sqlconfig.BudgetUpdate, 0, len(input.Body.Budgets))
	for _, body := range input.Body.Budgets {
		update, err := parseUpdateBudgetBody(body)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	rows, err := h.BudgetService.UpdateBatch(ctx, user.UserID, updates)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more budget records were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update budget records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("updatedCount", len(rows))
	}

	return &UpdateBudgetsOutput{
		Body: envelope.OK("Budgets updated successfully.", fromRows(rows)),
	}, nil
}
