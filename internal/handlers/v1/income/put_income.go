package income

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

// UpdateIncomeBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied, including zero values.
type UpdateIncomeBody struct {
	IncomeID     int64   `json:"income_id" required:"true" doc:"Income id to update"`
	Amount       *string `json:"amount,omitempty" doc:"New decimal amount, must be greater than zero"`
	Source       *string `json:"source,omitempty" doc:"New source"`
	DateReceived *string `json:"date_received,omitempty" doc:"New date, YYYY-MM-DD"`
}

// UpdateIncomesInput is the Huma input for batch-updating income records.
type UpdateIncomesInput struct {
	Body struct {
		Incomes []UpdateIncomeBody `json:"incomes" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateIncomesOutput is the Huma output for batch-updating income records.
type UpdateIncomesOutput struct {
	Body envelope.Body[[]Income]
}

// incomeUpdater is the interface for updating income records.
type incomeUpdater interface {
	UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.IncomeUpdate) ([]sqlconfig.Income, error)
}

// UpdateIncomesHandler handles PUT /api/income/put_income.
type UpdateIncomesHandler struct {
	IncomeService incomeUpdater
}

// NewUpdateIncomesHandler creates a new UpdateIncomesHandler.
func NewUpdateIncomesHandler(svc incomeUpdater) *UpdateIncomesHandler {
	return &UpdateIncomesHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-income",
		Method:      http.MethodPut,
		Path:        "/api/income/put_income",
		Summary:     "Update incomes",
		Description: "Applies a batch of partial updates in one transaction.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func parseUpdateIncomeBody(body UpdateIncomeBody) (sqlconfig.IncomeUpdate, error) {
	update := sqlconfig.IncomeUpdate{IncomeID: body.IncomeID}
	if body.Amount == nil && body.Source == nil && body.DateReceived == nil {
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
	if body.Source != nil {
		update.Source = omit.From(*body.Source)
	}
	if body.DateReceived != nil {
		dateReceived, err := time.Parse(dateLayout, *body.DateReceived)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid date_received: "+*body.DateReceived)
		}
		update.DateReceived = omit.From(dateReceived)
	}
	return update, nil
}

func (h *UpdateIncomesHandler) handle(ctx context.Context, input *UpdateIncomesInput) (*UpdateIncomesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	updates := make([]sqlconfig.IncomeUpdate, 0, len(input.Body.Incomes))
	for _, body := range input.Body.Incomes {
		update, err := parseUpdateIncomeBody(body)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	rows, err := h.IncomeService.UpdateBatch(ctx, user.UserID, updates)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more income records were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update income records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("updatedCount", len(rows))
	}

	return &UpdateIncomesOutput{
		Body: envelope.OK("Incomes updated successfully.", fromRows(rows)),
	}, nil
}
