package savingsgoals

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

// CreateSavingsGoalBody is one savings goal record in a create request.
type CreateSavingsGoalBody struct {
	GoalName     string  `json:"goal_name" required:"true" minLength:"1" doc:"What the user is saving for"`
	TargetAmount string  `json:"target_amount" required:"true" doc:"Decimal amount to reach, must be greater than zero"`
	SavedAmount  *string `json:"saved_amount,omitempty" doc:"Decimal amount already saved, defaults to zero"`
	Deadline     *string `json:"deadline,omitempty" doc:"Target date, YYYY-MM-DD, omit for open-ended"`
}

// CreateSavingsGoalsInput is the Huma input for batch-creating savings goal records.
type CreateSavingsGoalsInput struct {
	Body struct {
		SavingsGoals []CreateSavingsGoalBody `json:"savings_goals" required:"true" minItems:"1" doc:"Records to insert"`
	}
}

// CreateSavingsGoalsOutput is the Huma output for batch-creating savings goal records.
type CreateSavingsGoalsOutput struct {
	Status int
	Body   envelope.Body[[]SavingsGoal]
}

// savingsGoalCreator is the interface for creating savings goal records.
type savingsGoalCreator interface {
	CreateBatch(ctx context.Context, userID int64, creates []sqlconfig.SavingsGoalCreate) ([]sqlconfig.SavingsGoal, error)
}

// CreateSavingsGoalsHandler handles POST /api/savings_goals/post_goal.
type CreateSavingsGoalsHandler struct {
	SavingsGoalService savingsGoalCreator
}

// NewCreateSavingsGoalsHandler creates a new CreateSavingsGoalsHandler.
func NewCreateSavingsGoalsHandler(svc savingsGoalCreator) *CreateSavingsGoalsHandler {
	return &CreateSavingsGoalsHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateSavingsGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-goal",
		Method:      http.MethodPost,
		Path:        "/api/savings_goals/post_goal",
		Summary:     "Create savings goals",
		Description: "Inserts a batch of savings goal records in one transaction.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func parseCreateSavingsGoalBody(body CreateSavingsGoalBody) (sqlconfig.SavingsGoalCreate, error) {
	targetAmount, err := decimal.NewFromString(body.TargetAmount)
	if err != nil {
		return sqlconfig.SavingsGoalCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid target_amount: "+body.TargetAmount)
	}
	if !targetAmount.IsPositive() {
		return sqlconfig.SavingsGoalCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "target_amount must be greater than zero")
	}

	savedAmount := decimal.Zero
	if body.SavedAmount != nil {
		savedAmount, err = decimal.NewFromString(*body.SavedAmount)
		if err != nil {
			return sqlconfig.SavingsGoalCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid saved_amount: "+*body.SavedAmount)
		}
		if savedAmount.IsNegative() {
			return sqlconfig.SavingsGoalCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "saved_amount must not be negative")
		}
	}

	create := sqlconfig.SavingsGoalCreate{
		GoalName:     body.GoalName,
		TargetAmount: targetAmount,
		SavedAmount:  savedAmount,
	}
	if body.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *body.Deadline)
		if err != nil {
			return sqlconfig.SavingsGoalCreate{}, envelope.New(http.StatusBadRequest, "ValidationError", "invalid deadline: "+*body.Deadline)
		}
		create.Deadline = &deadline
	}
	return create, nil
}

func (h *CreateSavingsGoalsHandler) handle(ctx context.Context, input *CreateSavingsGoalsInput) (*CreateSavingsGoalsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	creates := make([]sqlconfig.SavingsGoalCreate, 0, len(input.Body.SavingsGoals))
	for _, body := range input.Body.SavingsGoals {
		create, err := parseCreateSavingsGoalBody(body)
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}

	rows, err := h.SavingsGoalService.CreateBatch(ctx, user.UserID, creates)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create savings goal records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateSavingsGoalsOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Savings goals created successfully.", fromRows(rows)),
	}, nil
}
