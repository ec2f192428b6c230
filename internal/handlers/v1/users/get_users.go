package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// GetUsersInput is the Huma input for fetching accounts by id.
type GetUsersInput struct {
	IDs []int64 `query:"ids" required:"true" minItems:"1" doc:"User ids to fetch"`
}

// GetUsersOutput is the Huma output for fetching accounts by id.
type GetUsersOutput struct {
	Body envelope.Body[[]User]
}

// userFetcher is the interface for fetching accounts by id.
type userFetcher interface {
	ListByIDs(ctx context.Context, callerID int64, ids []int64) ([]sqlconfig.User, error)
}

// GetUsersHandler handles GET /api/users/get_users.
type GetUsersHandler struct {
	UserService userFetcher
}

// NewGetUsersHandler creates a new GetUsersHandler.
func NewGetUsersHandler(svc userFetcher) *GetUsersHandler {
	return &GetUsersHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-users",
		Method:      http.MethodGet,
		Path:        "/api/users/get_users",
		Summary:     "Get users by id",
		Description: "Returns the caller's account when its id is among the given ids.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUsersHandler) handle(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.UserService.ListByIDs(ctx, user.UserID, input.IDs)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch accounts", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "No users found for the given ids.")
	}

	return &GetUsersOutput{
		Body: envelope.OK("Users fetched successfully.", fromRows(rows)),
	}, nil
}
