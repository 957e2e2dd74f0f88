package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credovault/credo/internal/auth/service"
	"github.com/credovault/credo/pkg/authsdk"
	"github.com/credovault/credo/pkg/httpx"
	"github.com/credovault/credo/pkg/slogx"
)

// LoginHandler serves POST /login. Unknown usernames and wrong passwords get
// the identical failure response so the endpoint cannot be used to probe for
// registered names.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			authsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.NewEnvelope("Login Success", authsdk.LoginData{Token: token}))
}
