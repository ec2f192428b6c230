package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetAllUsersInput is the Huma input for listing visible accounts.
type GetAllUsersInput struct{}

// GetAllUsersOutput is the Huma output for listing visible accounts.
type GetAllUsersOutput struct {
	Body envelope.Body[[]User]
}

// userLister is the interface for listing visible accounts.
type userLister interface {
	ListAll(ctx context.Context, callerID int64) ([]sqlconfig.User, error)
}

// GetAllUsersHandler handles GET /api/users/get_all_users.
type GetAllUsersHandler struct {
	UserService userLister
}

// NewGetAllUsersHandler creates a new GetAllUsersHandler.
func NewGetAllUsersHandler(svc userLister) *GetAllUsersHandler {
	return &GetAllUsersHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetAllUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-all-users",
		Method:      http.MethodGet,
		Path:        "/api/users/get_all_users",
		Summary:     "List users",
		Description: "Returns the accounts visible to the caller, which is only their own.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetAllUsersHandler) handle(ctx context.Context, input *GetAllUsersInput) (*GetAllUsersOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.UserService.ListAll(ctx, user.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	return &GetAllUsersOutput{
		Body: envelope.OK("Users fetched successfully.", fromRows(rows)),
	}, nil
}
