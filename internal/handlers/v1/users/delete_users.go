package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// DeleteUsersInput is the Huma input for batch-deleting accounts.
type DeleteUsersInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"User ids to delete; only the caller's own id has any effect"`
}

// DeleteUsersOutput is the Huma output for batch-deleting accounts.
type DeleteUsersOutput struct {
	Body envelope.Body[int64]
}

// DeleteUsersHandler handles DELETE /api/users/delete_users.
type DeleteUsersHandler struct {
	UserService userDeleter
}

// NewDeleteUsersHandler creates a new DeleteUsersHandler.
func NewDeleteUsersHandler(svc userDeleter) *DeleteUsersHandler {
	return &DeleteUsersHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-users",
		Method:      http.MethodDelete,
		Path:        "/api/users/delete_users",
		Summary:     "Delete users",
		Description: "Deletes the caller's account when its id is among the given ids.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUsersHandler) handle(ctx context.Context, input *DeleteUsersInput) (*DeleteUsersOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	affected, err := h.UserService.DeleteByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete accounts", err)
	}

	return &DeleteUsersOutput{
		Body: envelope.OK("Users deleted successfully.", affected),
	}, nil
}
