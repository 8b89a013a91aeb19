package server

import (
	"net/http"

	"github.com/sismk/tracker/internal/tracker"
)

// CharacterItem is one character as exposed over the API.
type CharacterItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Portrait string `json:"portrait"`
}

// ViewItem is one visible item row.
type ViewItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Scenario  string `json:"scenario"`
	Room      string `json:"room"`
	Tooltip   string `json:"tooltip"`
	Collected bool   `json:"collected"`
}

// ViewResponse is the derived selection state for one character and
// scenario filter. Scenario comes back empty when the filter was reset to
// "all scenarios".
type ViewResponse struct {
	CharacterID    string     `json:"characterId"`
	Scenario       string     `json:"scenario"`
	Scenarios      []string   `json:"scenarios"`
	Items          []ViewItem `json:"items"`
	CollectedCount int        `json:"collectedCount"`
	TotalCount     int        `json:"totalCount"`
}

func handleListCharacters(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chars := svc.Characters()
		out := make([]CharacterItem, len(chars))
		for i, c := range chars {
			out[i] = CharacterItem{ID: c.ID, Name: c.Name, Portrait: c.Portrait}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleView(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID := r.URL.Query().Get("character")
		scenario := r.URL.Query().Get("scenario")

		if characterID == "" {
			writeError(w, http.StatusBadRequest, "character query parameter is required")
			return
		}
		if !characterExists(svc, characterID) {
			writeError(w, http.StatusNotFound, "character not found")
			return
		}

		v := svc.View(characterID, scenario)

		resp := ViewResponse{
			CharacterID:    v.CharacterID,
			Scenario:       v.Scenario,
			Scenarios:      v.Scenarios,
			Items:          make([]ViewItem, len(v.Items)),
			CollectedCount: v.Collected,
			TotalCount:     v.Total,
		}
		for i, it := range v.Items {
			resp.Items[i] = ViewItem{
				ID:        it.Item.ID,
				Name:      it.Item.Name,
				Location:  it.Item.Location,
				Scenario:  it.Item.Scenario,
				Room:      it.Item.Room,
				Tooltip:   it.Tooltip,
				Collected: it.Collected,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func characterExists(svc *tracker.Service, id string) bool {
	for _, c := range svc.Characters() {
		if c.ID == id {
			return true
		}
	}
	return false
}
