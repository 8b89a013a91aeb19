package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Item Tracker API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the collectible item tracker companion.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports whether the data directory is writable.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/games
	listGames, _ := r.NewOperationContext(http.MethodGet, "/api/games")
	listGames.SetSummary("List games")
	listGames.SetDescription("Returns the games registry.")
	listGames.AddRespStructure([]GameItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listGames)

	// GET /api/games/current
	getCurrent, _ := r.NewOperationContext(http.MethodGet, "/api/games/current")
	getCurrent.SetSummary("Current game")
	getCurrent.SetDescription("Returns the active game.")
	getCurrent.AddRespStructure(GameItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCurrent)

	// PUT /api/games/current
	switchGame, _ := r.NewOperationContext(http.MethodPut, "/api/games/current")
	switchGame.SetSummary("Switch game")
	switchGame.SetDescription("Makes another registered game active and loads its catalog.")
	switchGame.AddReqStructure(SwitchGameRequest{})
	switchGame.AddRespStructure(GameItem{}, openapi.WithHTTPStatus(http.StatusOK))
	switchGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	switchGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(switchGame)

	// PUT /api/games
	saveGames, _ := r.NewOperationContext(http.MethodPut, "/api/games")
	saveGames.SetSummary("Replace games registry")
	saveGames.SetDescription("Overwrites the registry with the given games. Requires the editor password when the lock is enabled.")
	saveGames.AddReqStructure(SaveGamesRequest{})
	saveGames.AddRespStructure([]GameItem{}, openapi.WithHTTPStatus(http.StatusOK))
	saveGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	saveGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(saveGames)

	// GET /api/characters
	listChars, _ := r.NewOperationContext(http.MethodGet, "/api/characters")
	listChars.SetSummary("List characters")
	listChars.SetDescription("Returns the characters of the active game's catalog.")
	listChars.AddRespStructure([]CharacterItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listChars)

	// GET /api/view
	getView, _ := r.NewOperationContext(http.MethodGet, "/api/view")
	getView.SetSummary("Selection view")
	getView.SetDescription("Returns the visible items, available scenarios, and counters for a character and optional scenario filter.")
	getView.AddRespStructure(ViewResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getView.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getView.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getView)

	// GET /api/progress
	getProgress, _ := r.NewOperationContext(http.MethodGet, "/api/progress")
	getProgress.SetSummary("Get collected flag")
	getProgress.SetDescription("Returns the collected flag for one item under the active game.")
	getProgress.AddRespStructure(ProgressResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getProgress.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getProgress)

	// PUT /api/progress
	setProgress, _ := r.NewOperationContext(http.MethodPut, "/api/progress")
	setProgress.SetSummary("Set collected flag")
	setProgress.SetDescription("Toggles an item's collected flag; the profile is written through to disk immediately.")
	setProgress.AddReqStructure(ProgressRequest{})
	setProgress.AddRespStructure(ProgressResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	setProgress.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(setProgress)

	// GET /api/catalog
	getCatalog, _ := r.NewOperationContext(http.MethodGet, "/api/catalog")
	getCatalog.SetSummary("Get catalog")
	getCatalog.SetDescription("Returns the full character and item database of the active game, for the editor.")
	getCatalog.AddRespStructure(CatalogPayload{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCatalog)

	// PUT /api/catalog
	saveCatalog, _ := r.NewOperationContext(http.MethodPut, "/api/catalog")
	saveCatalog.SetSummary("Save catalog")
	saveCatalog.SetDescription("Replaces the active game's catalog wholesale. Requires the editor password when the lock is enabled.")
	saveCatalog.AddReqStructure(CatalogPayload{})
	saveCatalog.AddRespStructure(CatalogPayload{}, openapi.WithHTTPStatus(http.StatusOK))
	saveCatalog.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	saveCatalog.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(saveCatalog)

	// POST /api/reload
	postReload, _ := r.NewOperationContext(http.MethodPost, "/api/reload")
	postReload.SetSummary("Reload from disk")
	postReload.SetDescription("Re-reads the registry, catalog, and progress files after an external edit.")
	postReload.AddRespStructure(ReloadResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postReload)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of progress and catalog changes for one game (defaults to the active game).")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
