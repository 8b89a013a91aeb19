package server

import (
	"net/http"

	"github.com/sismk/tracker/internal/tracker"
)

// EditorItem is one collectible as exposed to the database editor.
type EditorItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Scenario     string   `json:"scenario"`
	Room         string   `json:"room"`
	AvailableFor []string `json:"availableFor"`
}

// CatalogPayload is the full catalog of the current game, both as returned
// by GET /api/catalog and as accepted by PUT /api/catalog. Saves replace
// the catalog wholesale; the editor performs no uniqueness or referential
// checks, matching the on-disk model.
type CatalogPayload struct {
	Characters []CharacterItem `json:"characters"`
	Items      []EditorItem    `json:"items"`
}

func toCatalogPayload(c tracker.Catalog) CatalogPayload {
	p := CatalogPayload{
		Characters: make([]CharacterItem, len(c.Characters)),
		Items:      make([]EditorItem, len(c.Items)),
	}
	for i, ch := range c.Characters {
		p.Characters[i] = CharacterItem{ID: ch.ID, Name: ch.Name, Portrait: ch.Portrait}
	}
	for i, it := range c.Items {
		p.Items[i] = EditorItem{
			ID:           it.ID,
			Name:         it.Name,
			Location:     it.Location,
			Scenario:     it.Scenario,
			Room:         it.Room,
			AvailableFor: it.AvailableFor,
		}
	}
	return p
}

func fromCatalogPayload(p CatalogPayload) tracker.Catalog {
	c := tracker.Catalog{
		Characters: make([]tracker.Character, len(p.Characters)),
		Items:      make([]tracker.Item, len(p.Items)),
	}
	for i, ch := range p.Characters {
		c.Characters[i] = tracker.Character{ID: ch.ID, Name: ch.Name, Portrait: ch.Portrait}
	}
	for i, it := range p.Items {
		c.Items[i] = tracker.Item{
			ID:           it.ID,
			Name:         it.Name,
			Location:     it.Location,
			Scenario:     it.Scenario,
			Room:         it.Room,
			AvailableFor: it.AvailableFor,
		}
	}
	return c
}

func handleGetCatalog(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := tracker.Catalog{Characters: svc.Characters(), Items: svc.Items()}
		writeJSON(w, http.StatusOK, toCatalogPayload(c))
	}
}

func handleSaveCatalog(svc *tracker.Service, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CatalogPayload
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.SaveCatalog(fromCatalogPayload(req)); err != nil {
			writeError(w, http.StatusInternalServerError, "saving catalog failed")
			return
		}

		broker.Publish(svc.CurrentGame().ID, Event{Type: "catalog"})

		c := tracker.Catalog{Characters: svc.Characters(), Items: svc.Items()}
		writeJSON(w, http.StatusOK, toCatalogPayload(c))
	}
}
