package http

import (
	"net/http"

	"github.com/credovault/credo/pkg/httpx"
)

// ProtectedHandler serves GET /protected, a route that exists to prove the
// caller holds a live token. The real access control lives in the
// authentication middleware wrapped around it.
type ProtectedHandler struct{}

func (h *ProtectedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteText(w, http.StatusOK, "This is a protected route")
}
