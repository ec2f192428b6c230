package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage/sqlconfig"
)

// SignupBody is the request body for creating an account.
type SignupBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Unique username"`
	Email    string `json:"email" required:"true" format:"email" doc:"Unique email address"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Plaintext password, stored only as a bcrypt hash"`
}

// SignupInput is the Huma input for signup.
type SignupInput struct {
	Body SignupBody
}

// SignupOutput is the Huma output for signup.
type SignupOutput struct {
	Status int
	Body   envelope.Body[Credentials]
}

// signupService is the interface for registering accounts.
type signupService interface {
	Signup(ctx context.Context, username, email, password string) (*sqlconfig.User, string, error)
}

// SignupHandler handles POST /api/auth/signup.
type SignupHandler struct {
	AuthService signupService
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(svc signupService) *SignupHandler {
	return &SignupHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SignupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/api/auth/signup",
		Summary:     "Sign up",
		Description: "Creates an account and returns a signed token for it.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *SignupHandler) handle(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	user, token, err := h.AuthService.Signup(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return nil, envelope.New(http.StatusBadRequest, "UserAlreadyExists", "Username or email is already in use.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", user.UserID)
	}

	return &SignupOutput{
		Status: http.StatusCreated,
		Body: envelope.OK("Signup successful.", Credentials{
			JWT:  token,
			User: fromRow(user),
		}),
	}, nil
}
