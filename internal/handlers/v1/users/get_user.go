package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// GetUserInput is the Huma input for fetching one account.
type GetUserInput struct {
	ID int64 `path:"id" doc:"User id to fetch"`
}

// GetUserOutput is the Huma output for fetching one account.
type GetUserOutput struct {
	Body envelope.Body[User]
}

// GetUserHandler handles GET /api/users/get_user/{id}.
type GetUserHandler struct {
	UserService userFetcher
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc userFetcher) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/users/get_user/{id}",
		Summary:     "Get one user",
		Description: "Returns the account with the given id, limited to what the caller may see.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	rows, err := h.UserService.ListByIDs(ctx, user.UserID, []int64{input.ID})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch user", err)
	}
	if len(rows) == 0 {
		return nil, envelope.New(http.StatusNotFound, "NotFoundError", "User not found.")
	}

	return &GetUserOutput{
		Body: envelope.OK("User fetched successfully.", fromRow(rows[0])),
	}, nil
}
