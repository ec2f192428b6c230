// Package status exposes the unauthenticated health endpoint.
package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// GetStatusInput is the Huma input for the health check.
type GetStatusInput struct{}

// GetStatusOutput is the Huma output for the health check.
type GetStatusOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always ok while the server is up"`
	}
}

// Handler handles GET /status.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	out := &GetStatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
