package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// DeleteUserInput is the Huma input for deleting one account.
type DeleteUserInput struct {
	ID int64 `path:"id" doc:"User id to delete, must be the caller's own"`
}

// DeleteUserOutput is the Huma output for deleting one account.
type DeleteUserOutput struct {
	Body envelope.Body[int64]
}

// userDeleter is the interface for deleting accounts.
type userDeleter interface {
	DeleteByIDs(ctx context.Context, callerID int64, ids []int64) (int64, error)
}

// DeleteUserHandler handles DELETE /api/users/delete_user/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/api/users/delete_user/{id}",
		Summary:     "Delete user",
		Description: "Deletes the caller's account; owned records cascade with it. Another user's id counts zero rows.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.UserService.DeleteByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete account", err)
	}

	return &DeleteUserOutput{
		Body: envelope.OK("User deleted successfully.", affected),
	}, nil
}
