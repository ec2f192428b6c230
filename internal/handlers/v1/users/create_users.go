package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// CreateUserBody is one account in a create request.
type CreateUserBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Unique username"`
	Email    string `json:"email" required:"true" format:"email" doc:"Unique email address"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Plaintext password, stored only as a bcrypt hash"`
}

// CreateUsersInput is the Huma input for batch-creating accounts.
type CreateUsersInput struct {
	Body struct {
		Users []CreateUserBody `json:"users" required:"true" minItems:"1" doc:"Accounts to create"`
	}
}

// CreateUsersOutput is the Huma output for batch-creating accounts.
type CreateUsersOutput struct {
	Status int
	Body   envelope.Body[[]User]
}

// userCreator is the interface for creating accounts.
type userCreator interface {
	CreateBatch(ctx context.Context, newUsers []service.NewUser) ([]sqlconfig.User, error)
}

// CreateUsersHandler handles POST /api/users/post_users.
type CreateUsersHandler struct {
	UserService userCreator
}

// NewCreateUsersHandler creates a new CreateUsersHandler.
func NewCreateUsersHandler(svc userCreator) *CreateUsersHandler {
	return &CreateUsersHandler{UserService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-users",
		Method:      http.MethodPost,
		Path:        "/api/users/post_users",
		Summary:     "Create users",
		Description: "Creates a batch of accounts in one transaction.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *CreateUsersHandler) handle(ctx context.Context, input *CreateUsersInput) (*CreateUsersOutput, error) {
	newUsers := make([]service.NewUser, 0, len(input.Body.Users))
	for _, body := range input.Body.Users {
		newUsers = append(newUsers, service.NewUser{
			Username: body.Username,
			Email:    body.Email,
			Password: body.Password,
		})
	}

	rows, err := h.UserService.CreateBatch(ctx, newUsers)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create accounts", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("createdCount", len(rows))
	}

	return &CreateUsersOutput{
		Status: http.StatusCreated,
		Body:   envelope.OK("Users created successfully.", fromRows(rows)),
	}, nil
}
