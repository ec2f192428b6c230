package income

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

// CreateIncomeBody is one income record in a create request.
type CreateIncomeBody struct {
	Amount       string `json:"amount" required:"true" doc:"Decimal amount, must be greater than zero"`
	Source       string `json:"source" required:"true" minLength:"1" doc:"Where the money came from"`
	DateReceived string `json:"date_received" required:"true" doc:"Date the money arrived, YYYY-MM-DD"`
}

// CreateIncomesInput is the Huma input for batch-creating income records.
type CreateIncomesInput struct {
	Body struct {
		Incomes []CreateIncomeBody `json:"incomes" required:"true" minItems:"1" doc:"Records to insert"`
	}
}

// CreateIncomesOutput is the Huma output for batch-creating income records.
type CreateIncomesOutput struct {
	Status int
	Body   envelope.Body[[]Income]
}

// incomeCreator is the interface for creating income records.
type incomeCreator interface {
	CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.IncomeCreate) ([]sqlconfig.Income, error)
}

// CreateIncomesHandler handles POST /api/income/post_income.
type CreateIncomesHandler struct {
	IncomeService incomeCreator
}

// NewCreateIncomesHandler creates a new CreateIncomesHandler.
func NewCreateIncomesHandler(svc incomeCreator) *CreateIncomesHandler {
	return &CreateIncomesHandler{IncomeService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateIncomesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-income",
		Method:      http.MethodPost,
		Path:        "/api/income/post_income",
		Summary:     "Create incomes",
		Description: "Inserts a batch of income records in one transaction.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func parseCreateIncomeBody(body CreateIncomeBody) (sqlconfig.IncomeCreate, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return sqlconfig.IncomeCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid amount: "+body.Amount)
	}
	if !amount.IsPositive() {
		return sqlconfig.IncomeCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "amount must be greater than zero")
	}
	dateReceived, err := time.Parse(dateLayout, body.DateReceived)
	if err != nil {
		return sqlconfig.IncomeCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid date_received: "+body.DateReceived)
	}
	return sqlconfig.IncomeCreate{
		Amount:       amount,
		Source:       body.Source,
		DateReceived: dateReceived,
	}, nil
}

func (h *CreateIncomesHandler) handle(ctx context.Context, input *CreateIncomesInput) (*CreateIncomesOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	creates := make([]sqlconfig.IncomeCreate, 0, len(input.Body.Incomes))
	for _, body := range input.Body.Incomes {
		create, err := parseCreateIncomeBody(body)
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}

	rows, err := h.IncomeService.CreateBatch(ctx, user.UserID, creates)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create income records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateIncomesOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Incomes created successfully.", fromRows(rows)),
	}, nil
}
