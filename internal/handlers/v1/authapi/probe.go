package authapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aluriVenkatVaibhav/FinTrack/internal/auth"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/handlers/v1/envelope"
)

// ProbeInput is the Huma input for the bearer probe.
type ProbeInput struct{}

// ProbeOutput is the Huma output for the bearer probe.
type ProbeOutput struct {
	Body envelope.Body[User]
}

// ProbeHandler handles GET /api/auth/auth. Clients holding a stored token use
// it to resolve the account the token belongs to.
type ProbeHandler struct{}

// NewProbeHandler creates a new ProbeHandler.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Register registers the endpoint with the Huma API.
func (h *ProbeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-probe",
		Method:      http.MethodGet,
		Path:        "/api/auth/auth",
		Summary:     "Resolve token",
		Description: "Returns the account the bearer token belongs to.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ProbeHandler) handle(ctx context.Context, input *ProbeInput) (*ProbeOutput, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, envelope.New(http.StatusUnauthorized, "AuthenticationError", "User is not authenticated.")
	}

	return &ProbeOutput{
		Body: envelope.OK("Authenticated.", fromRow(user)),
	}, nil
}
