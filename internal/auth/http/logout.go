package http

import (
	"net/http"

	"github.com/credovault/credo/internal/auth/service"
	"github.com/credovault/credo/pkg/httpx"
	"github.com/credovault/credo/pkg/slogx"
)

// LogoutHandler serves POST /logout. The authentication middleware has
// already vetted the token, so all that is left is to place it in the
// revocation registry. Revoking an already-revoked token never reaches this
// handler; the middleware rejects it first.
type LogoutHandler struct {
	TokenService *service.TokenService
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	raw := httpx.TokenFromCtx(ctx)
	claims, ok := httpx.ClaimsFromCtx(ctx)
	if raw == "" || !ok {
		// Route wired without AuthnMiddleware; a config bug, not a client error.
		log.Error("logout reached without authenticated token")
		httpx.WriteText(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.TokenService.Revoke(ctx, raw, claims); err != nil {
		log.Error("logout failed", "err", err)
		httpx.WriteText(w, http.StatusInternalServerError, "Server error")
		return
	}

	log.Info("token revoked", "user_id", claims.Subject)
	httpx.WriteText(w, http.StatusOK, "Logged out successfully")
}
