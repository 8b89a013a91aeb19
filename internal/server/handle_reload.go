package server

import (
	"log/slog"
	"net/http"

	"github.com/sismk/tracker/internal/tracker"
)

// ReloadResponse summarizes the state after a reload from disk.
type ReloadResponse struct {
	Game       string `json:"game"`
	Characters int    `json:"characters"`
	Items      int    `json:"items"`
}

// handleReload re-reads all data files, picking up edits made outside the
// application.
func handleReload(svc *tracker.Service, broker *Broker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Reload()
		if err != nil {
			logger.Error("reload failed", "error", err)
			writeError(w, http.StatusInternalServerError, "reload failed")
			return
		}

		broker.Publish(svc.CurrentGame().ID, Event{Type: "catalog"})

		writeJSON(w, http.StatusOK, ReloadResponse{
			Game:       svc.CurrentGame().ID,
			Characters: len(c.Characters),
			Items:      len(c.Items),
		})
	}
}
