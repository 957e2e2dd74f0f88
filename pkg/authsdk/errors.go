package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/credovault/credo/pkg/httpx"
)

// APIError represents a failure response from the service. It is used both
// by the server (to write HTTP responses) and by the SDK client (to surface
// errors to callers).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is the fixed, client-safe message for this error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer using the
// standard response envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": e.Message,
		"result":  false,
		"data":    nil,
	})
}

var (
	// ErrInvalidRequest is returned when the request body cannot be parsed.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body",
	}

	// ErrUserExists is returned when registering a username that is already
	// taken under case-insensitive comparison.
	ErrUserExists = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "User already exists",
	}

	// ErrInvalidCredentials covers both unknown-username and wrong-password,
	// deliberately indistinguishable to prevent username enumeration.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "UserName or Password is Wrong",
	}

	// ErrServerError is the only catch-all; expected business conditions
	// always map to one of the specific errors above.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Server error",
	}
)
