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

// LoginBody is the request body for logging in.
type LoginBody struct {
	UsernameOrEmail string `json:"username_or_email" required:"true" minLength:"1" doc:"Username or email address"`
	Password        string `json:"password" required:"true" minLength:"1" doc:"Plaintext password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body envelope.Body[Credentials]
}

// loginService is the interface for checking credentials.
type loginService interface {
	Login(ctx context.Context, usernameOrEmail, password string) (*sqlconfig.User, string, error)
}

// LoginHandler handles POST /api/auth/login.
type LoginHandler struct {
	AuthService loginService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc loginService) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns a signed token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, token, err := h.AuthService.Login(ctx, input.Body.UsernameOrEmail, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, envelope.New(http.StatusNotFound, "InvalidUsernameOrEmail", "No account matches that username or email.")
		}
		if errors.Is(err, service.ErrWrongPassword) {
			return nil, envelope.New(http.StatusUnauthorized, "WrongPassword", "Wrong password.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", user.UserID)
	}

	return &LoginOutput{
		Body: envelope.OK("Login successful.", Credentials{
			JWT:  token,
			User: fromRow(user),
		}),
	}, nil
}
