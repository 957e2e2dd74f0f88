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

// RegisterHandler serves POST /register. Usernames that differ only by case
// are the same account, so a second registration under any case variant is
// rejected with the same "already exists" response.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID, err := h.AuthService.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			authsdk.ErrUserExists.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.NewEnvelope("Saved Successfully", userID))
}
