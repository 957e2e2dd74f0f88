package http

import (
	"net/http"
	"time"

	"github.com/credovault/credo/internal/auth/store"
	"github.com/credovault/credo/pkg/authsdk"
	"github.com/credovault/credo/pkg/httpx"
)

// ReadyzHandler is the readiness probe. It reports degraded with a 503 when
// the credential store is unreachable, since every endpoint depends on it.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := authsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
