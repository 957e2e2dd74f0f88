package authsdk

import "encoding/json"

// Envelope is the wire format of the /register and /login endpoints.
// Data carries a user id string for register and a LoginData object for
// login; it is null on failure responses.
type Envelope struct {
	Message string          `json:"message"`
	Result  bool            `json:"result"`
	Data    json.RawMessage `json:"data"`
}

// NewEnvelope builds a success envelope around data.
func NewEnvelope(message string, data any) Envelope {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = json.RawMessage("null")
	}
	return Envelope{Message: message, Result: true, Data: raw}
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
