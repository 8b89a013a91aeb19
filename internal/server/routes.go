package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/sismk/tracker/internal/tracker"
)

func addRoutes(r chi.Router, logger *slog.Logger, svc *tracker.Service, editorHash []byte, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Item Tracker API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, svc))

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", handleListGames(svc))
		r.Get("/games/current", handleCurrentGame(svc))
		r.Put("/games/current", handleSwitchGame(svc, logger))

		r.Get("/characters", handleListCharacters(svc))
		r.Get("/view", handleView(svc))

		r.Get("/progress", handleGetProgress(svc))
		r.Put("/progress", handleSetProgress(svc, broker))

		r.Get("/catalog", handleGetCatalog(svc))
		r.Get("/events", handleEvents(svc, broker))
		r.Post("/reload", handleReload(svc, broker, logger))

		// Database edits — optionally behind the editor lock.
		r.Group(func(r chi.Router) {
			r.Use(editorLock(editorHash))
			r.Put("/catalog", handleSaveCatalog(svc, broker))
			r.Put("/games", handleSaveGames(svc))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
