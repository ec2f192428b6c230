// Package envelope defines the response shapes shared by every endpoint:
// a success wrapper and the error model huma serializes for failures.
package envelope

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Body wraps every successful response.
type Body[T any] struct {
	Success bool   `json:"success" doc:"Always true for successful responses"`
	Message string `json:"message" doc:"Human-readable summary"`
	Results T      `json:"results" doc:"Operation results"`
}

// OK builds a success body.
func OK[T any](message string, results T) Body[T] {
	return Body[T]{
		Success: true,
		Message: message,
		Results: results,
	}
}

// ErrorModel is the body of every non-2xx response.
type ErrorModel struct {
	Success   bool   `json:"success" doc:"Always false for errors"`
	Message   string `json:"error" doc:"Human-readable error message"`
	ErrorType string `json:"errorType" doc:"Stable error class for clients to branch on"`

	status int
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

// New builds an error response with an explicit error type.
func New(status int, errorType, message string) huma.StatusError {
	return &ErrorModel{
		Message:   message,
		ErrorType: errorType,
		status:    status,
	}
}

func typeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "AuthenticationError"
	case status == http.StatusNotFound:
		return "NotFoundError"
	case status == http.StatusConflict:
		return "ConflictError"
	case status >= http.StatusInternalServerError:
		return "InternalServerError"
	case status >= http.StatusBadRequest:
		return "ValidationError"
	default:
		return "Error"
	}
}

func init() {
	// Replace huma's default error model so framework-generated errors
	// (validation failures, 404s) share the envelope shape. Internal error
	// detail is logged server-side and never echoed to the client.
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status >= http.StatusInternalServerError {
			for _, err := range errs {
				if err != nil {
					logrus.WithError(err).WithField("status", status).Error("request failed")
				}
			}
			return &ErrorModel{
				Message:   message,
				ErrorType: typeForStatus(status),
				status:    status,
			}
		}

		for _, err := range errs {
			if err != nil {
				message = fmt.Sprintf("%s: %s", message, err.Error())
				break
			}
		}
		return &ErrorModel{
			Message:   message,
			ErrorType: typeForStatus(status),
			status:    status,
		}
	}
}
