package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator/actions"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// UpdateUserBody is one partial update in a put request. Absent fields are
// left unchanged; present fields are applied.
type UpdateUserBody struct {
	UserID   int64   `json:"user_id" required:"true" doc:"User id to update, must be the caller's own"`
	Username *string `json:"username,omitempty" doc:"New username"`
	Email    *string `json:"email,omitempty" doc:"New email address"`
	Password *string `json:"password,omitempty" doc:"New plaintext password, stored only as a bcrypt hash"`
}

// UpdateUsersInput is the Huma input for batch-updating accounts.
type UpdateUsersInput struct {
	Body struct {
		Users []UpdateUserBody `json:"users" required:"true" minItems:"1" doc:"Partial updates to apply"`
	}
}

// UpdateUsersOutput is the Huma output for batch-updating accounts.
type UpdateUsersOutput struct {
	Body envelope.Body[[]User]
}

// userUpdater is the interface for updating accounts.
type userUpdater interface {
	UpdateBatch(ctx context.Context, callerID int64, patches []service.UserPatch) ([]sqlconfig.User, error)
}

// UpdateUsersHandler handles PUT /api/users/put_user.
type UpdateUsersHandler struct {
	UserService userUpdater
}

// NewUpdateUsersHandler creates a new UpdateUsersHandler.
func NewUpdateUsersHandler(svc userUpdater) *UpdateUsersHandler {
	return &UpdateUsersHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-user",
		Method:      http.MethodPut,
		Path:        "/api/users/put_user",
		Summary:     "Update users",
		Description: "Applies partial updates to the caller's own account.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUsersHandler) handle(ctx context.Context, input *UpdateUsersInput) (*UpdateUsersOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	patches := make([]service.UserPatch, 0, len(input.Body.Users))
	for _, body := range input.Body.Users {
		patch := service.UserPatch{UserID: body.UserID}
		if body.Username == nil && body.Email == nil && body.Password == nil {
			return nil, envelope.New(http.StatusBadRequest, "ValidationError", "no fields to update")
		}
		if body.Username != nil {
			patch.Username = omit.From(*body.Username)
		}
		if body.Email != nil {
			patch.Email = omit.From(*body.Email)
		}
		if body.Password != nil {
			patch.Password = omit.From(*body.Password)
		}
		patches = append(patches, patch)
	}

	rows, err := h.UserService.UpdateBatch(ctx, user.UserID, patches)
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, envelope.New(http.StatusNotFound, "NotFoundError", "One or more users were not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update accounts", err)
	}

	return &UpdateUsersOutput{
		Body: envelope.OK("Users updated successfully.", fromRows(rows)),
	}, nil
}
