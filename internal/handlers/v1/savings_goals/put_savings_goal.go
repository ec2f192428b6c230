package savingsgoals

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// UpdateSavingsGoalBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied, including zero values.
type UpdateSavingsGoalBody struct {
	GoalID       int64   `json:"goal_id" required:"true" doc:"Savings goal id to update"`
	GoalName     *string `json:"goal_name,omitempty" doc:"New goal name"`
	TargetAmount *string `json:"target_amount,omitempty" doc:"New target amount, must be greater than zero"`
	SavedAmount  *string `json:"saved_amount,omitempty" doc:"New saved amount, must not be negative"`
	Deadline     *string `json:"deadline,omitempty" doc:"New target date, YYYY-MM-DD; an empty string clears the deadline"`
}

// UpdateSavingsGoalsInput is the Huma input for batch-updating savings goal records.
type UpdateSavingsGoalsInput struct {
	Body struct {
		SavingsGoals []UpdateSavingsGoalBody `json:"savings_goals" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateSavingsGoalsOutput is the Huma output for batch-updating savings goal records.
type UpdateSavingsGoalsOutput struct {
	Body envelope.Body[[]SavingsGoal]
}

// savingsGoalUpdater is the interface for updating savings goal records.
type savingsGoalUpdater interface {
	UpdateBatch(ctx context.Context, userID int64, updates []sqlconfig.SavingsGoalUpdate) ([]sqlconfig.SavingsGoal, error)
}

// UpdateSavingsGoalsHandler handles PUT /api/savings_goals/put_goal.
type UpdateSavingsGoalsHandler struct {
	SavingsGoalService savingsGoalUpdater
}

// NewUpdateSavingsGoalsHandler creates a new UpdateSavingsGoalsHandler.
func NewUpdateSavingsGoalsHandler(svc savingsGoalUpdater) *UpdateSavingsGoalsHandler {
	return &UpdateSavingsGoalsHandler{SavingsGoalService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateSavingsGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-goal",
		Method:      http.MethodPut,
		Path:        "/api/savings_goals/put_goal",
		Summary:     "Update savings goals",
		Description: "Applies a batch of partial updates in one transaction.",
		Tags:        []string{"Savings Goals"},
	}, h.handle)
}

func parseUpdateSavingsGoalBody(body UpdateSavingsGoalBody) (sqlconfig.SavingsGoalUpdate, error) {
	update := sqlconfig.SavingsGoalUpdate{GoalID: body.GoalID}
	if body.GoalName == nil && body.TargetAmount == nil && body.SavedAmount == nil && body.Deadline == nil {
		return update, envelope.New(http.StatusBadRequest, "ValidationError", "no fields to update")
	}
	if body.GoalName != nil {
		update.GoalName = omit.From(*body.GoalName)
	}
	if body.TargetAmount != nil {
		targetAmount, err := decimal.NewFromString(*body.TargetAmount)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid target_amount: "+*body.TargetAmount)
		}
		if !targetAmount.IsPositive() {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "target_amount must be greater than zero")
		}
		update.TargetAmount = omit.From(targetAmount)
	}
	if body.SavedAmount != nil {
		savedAmount, err := decimal.NewFromString(*body.SavedAmount)
		if err != nil {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid saved_amount: "+*body.SavedAmount)
		}
		if savedAmount.IsNegative() {
			return update, envelope.New(http.StatusBadRequest, "ValidationError", "saved_amount must not be negative")
		}
		update.SavedAmount = omit.From(savedAmount)
	}
	if body.Deadline != nil {
		if *body.Deadline == "" {
			update.Deadline = omitnull.FromPtr[time.Time](nil)
		} else {
			deadline, err := time.Parse(dateLayout, *body.Deadline)
			if err != nil {
				return update, envelope.New(http.StatusBadRequest, "ValidationError", "invalid deadline: "+*body.Deadline)
			}
			update.Deadline = omitnull.From(deadline)
		}
	}
	return update, nil
}

func (h *UpdateSavingsGoalsHandler) handle(ctx context.Context, input *UpdateSavingsGoalsInput) (*UpdateSavingsGoalsOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	updates := make([]sqlconfig.SavingsGoalUpdate, 0, len(input.Body.SavingsGoals))
	for _, body := range input.Body.SavingsGoals {
		update, err := parseUpdateSavingsGoalBody(body)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	rows, err := h.SavingsGoalService.UpdateBatch(ctx, user.UserID, updates)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more savings goal records were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update savings goal records", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("updatedCount", len(rows))
	}

	return &UpdateSavingsGoalsOutput{
		Body: envelope.OK("Savings goals updated successfully.", fromRows(rows)),
	}, nil
}
