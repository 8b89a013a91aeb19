package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/sismk/tracker/internal/tracker"
)

// HealthResponse reports the status of the data directory.
type HealthResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
}

// handleHealth probes that the data directory still exists and is writable;
// every operation in the app ends in a whole-file write there.
func handleHealth(logger *slog.Logger, svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp HealthResponse
		resp.Data.Status = "ok"
		status := http.StatusOK

		if err := probeDataDir(svc.DataDir()); err != nil {
			logger.Error("health check failed", "name", "data", "error", err)
			resp.Data.Status = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}

func probeDataDir(dir string) error {
	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
