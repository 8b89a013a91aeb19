package server

import (
	"net/http"
	"strings"

	"github.com/sismk/tracker/internal/tracker"
)

// ProgressRequest is the request body for PUT /api/progress.
type ProgressRequest struct {
	CharacterID string `json:"characterId"`
	ItemID      string `json:"itemId"`
	Collected   bool   `json:"collected"`
}

// ProgressResponse reflects one collected flag under the active game.
type ProgressResponse struct {
	GameID      string `json:"gameId"`
	CharacterID string `json:"characterId"`
	ItemID      string `json:"itemId"`
	Collected   bool   `json:"collected"`
}

func handleGetProgress(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID := r.URL.Query().Get("character")
		itemID := r.URL.Query().Get("item")
		if characterID == "" || itemID == "" {
			writeError(w, http.StatusBadRequest, "character and item query parameters are required")
			return
		}

		writeJSON(w, http.StatusOK, ProgressResponse{
			GameID:      svc.CurrentGame().ID,
			CharacterID: characterID,
			ItemID:      itemID,
			Collected:   svc.Collected(characterID, itemID),
		})
	}
}

// handleSetProgress is the write-through toggle: the profile is persisted
// before the response goes out, and subscribers of the active game get a
// progress event.
func handleSetProgress(svc *tracker.Service, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProgressRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.CharacterID = strings.TrimSpace(req.CharacterID)
		req.ItemID = strings.TrimSpace(req.ItemID)
		if req.CharacterID == "" || req.ItemID == "" {
			writeError(w, http.StatusBadRequest, "characterId and itemId are required")
			return
		}

		if err := svc.SetCollected(req.CharacterID, req.ItemID, req.Collected); err != nil {
			writeError(w, http.StatusInternalServerError, "saving progress failed")
			return
		}

		gameID := svc.CurrentGame().ID
		broker.Publish(gameID, Event{
			Type:        "progress",
			CharacterID: req.CharacterID,
			ItemID:      req.ItemID,
			Collected:   req.Collected,
		})

		writeJSON(w, http.StatusOK, ProgressResponse{
			GameID:      gameID,
			CharacterID: req.CharacterID,
			ItemID:      req.ItemID,
			Collected:   req.Collected,
		})
	}
}
