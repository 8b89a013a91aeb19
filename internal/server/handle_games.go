package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sismk/tracker/internal/tracker"
)

// GameItem is one registry entry as exposed over the API.
type GameItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemsFile string `json:"itemsFile"`
	LogoPath  string `json:"logoPath"`
}

// SwitchGameRequest is the request body for PUT /api/games/current.
type SwitchGameRequest struct {
	ID string `json:"id"`
}

// SaveGamesRequest is the request body for PUT /api/games. The full registry
// is replaced wholesale.
type SaveGamesRequest struct {
	Games []GameItem `json:"games"`
}

func toGameItem(g tracker.Game) GameItem {
	return GameItem{ID: g.ID, Name: g.Name, ItemsFile: g.ItemsFile, LogoPath: g.LogoPath}
}

func handleListGames(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games := svc.Games()
		out := make([]GameItem, len(games))
		for i, g := range games {
			out[i] = toGameItem(g)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleCurrentGame(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toGameItem(svc.CurrentGame()))
	}
}

// handleSwitchGame performs the two-step switch: point the facade at the new
// game, then reload the catalog for it.
func handleSwitchGame(svc *tracker.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SwitchGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.ID = strings.TrimSpace(req.ID)
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		var game tracker.Game
		found := false
		for _, g := range svc.Games() {
			if g.ID == req.ID {
				game = g
				found = true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		if err := svc.SetCurrentGame(game); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := svc.LoadCatalog(); err != nil {
			logger.Error("loading catalog failed", "game", game.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "loading catalog failed")
			return
		}

		writeJSON(w, http.StatusOK, toGameItem(svc.CurrentGame()))
	}
}

func handleSaveGames(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveGamesRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		games := make([]tracker.Game, len(req.Games))
		for i, g := range req.Games {
			games[i] = tracker.Game{
				ID:        strings.TrimSpace(g.ID),
				Name:      g.Name,
				ItemsFile: strings.TrimSpace(g.ItemsFile),
				LogoPath:  g.LogoPath,
			}
		}

		if err := svc.SaveGames(games); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		saved := svc.Games()
		out := make([]GameItem, len(saved))
		for i, g := range saved {
			out[i] = toGameItem(g)
		}
		writeJSON(w, http.StatusOK, out)
	}
}
