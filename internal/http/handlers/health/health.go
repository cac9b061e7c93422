// Package health exposes the GET / liveness endpoint.
package health

import (
	"net/http"

	"github.com/meera-nair/student-records-api/internal/utils/response"
)

// Health is the payload returned by the root endpoint. It is the only
// unauthenticated signal that the process is up and which build is
// running.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// New returns the handler for GET /. The version is injected from main
// so the handler stays free of build metadata concerns.
func New(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, Health{
			Status:  "running",
			Version: version,
		})
	}
}
