package http

import (
	"net/http"
	"time"

	"userhub-go/internal/hub/store"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/userhub"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking database connectivity in addition to basic health.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	userhub.HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	userhub.HealthResponse	"status, uptime, version - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, userhub.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
