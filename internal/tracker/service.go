package tracker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Service composes the games registry, the catalog of the current game, and
// the progress profile into one unit. It is the single logical owner of the
// in-memory state and the single writer for the data files. All methods are
// safe for concurrent use; each call runs to completion under one mutex, so
// operations still execute in issue order with whole-file overwrites.
type Service struct {
	mu      sync.Mutex
	dataDir string

	games   []Game
	current Game

	catalog       Catalog
	profile       Profile
	profileLoaded bool
}

// New creates the data directory if needed and loads the games registry.
// The catalog and profile are loaded by the first LoadCatalog call.
func New(dataDir string) (*Service, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	games, err := LoadGames(filepath.Join(dataDir, GamesFile))
	if err != nil {
		return nil, fmt.Errorf("loading games registry: %w", err)
	}
	return &Service{
		dataDir: dataDir,
		games:   games,
		current: games[0],
	}, nil
}

// DataDir returns the directory holding the data files.
func (s *Service) DataDir() string { return s.dataDir }

// Games returns a copy of the registry.
func (s *Service) Games() []Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// CurrentGame returns the active game.
func (s *Service) CurrentGame() Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetCurrentGame switches the active game. A game with an empty id is a
// programming error and fails fast. Switching to the already-active game is
// a no-op. The in-memory catalog is NOT reloaded here; callers follow up
// with LoadCatalog (two-step switch).
func (s *Service) SetCurrentGame(g Game) error {
	if g.ID == "" {
		return errors.New("game id is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == s.current.ID {
		return nil
	}
	if g.ItemsFile == "" {
		g.ItemsFile = DefaultItemsFile
	}
	s.current = g
	return nil
}

// LoadCatalog loads the catalog for the current game from disk, creating it
// with defaults if missing. The first successful call also loads and
// normalizes the progress profile.
func (s *Service) LoadCatalog() (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCatalogLocked()
}

func (s *Service) loadCatalogLocked() (Catalog, error) {
	c, err := LoadCatalog(s.catalogPath())
	if err != nil {
		return Catalog{}, err
	}
	s.catalog = c

	if !s.profileLoaded {
		if err := s.loadProfileLocked(); err != nil {
			return Catalog{}, err
		}
	}
	return c, nil
}

func (s *Service) loadProfileLocked() error {
	p, err := LoadProfile(filepath.Join(s.dataDir, ProgressFile), s.games[0].ID)
	if err != nil {
		return err
	}
	s.profile = p
	s.profileLoaded = true
	return nil
}

// SaveCatalog overwrites the current game's catalog file and replaces the
// in-memory catalog.
func (s *Service) SaveCatalog(c Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalizeCatalog(&c)
	if err := SaveCatalog(s.catalogPath(), c); err != nil {
		return err
	}
	s.catalog = c
	return nil
}

// SaveGames overwrites the registry with the given sequence, applying the
// registry's own normalization rules (blank ids discarded, blank ItemsFile
// defaulted). At least one valid game must remain. If the current game was
// removed, the first game becomes current; the catalog is not reloaded.
func (s *Service) SaveGames(games []Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := make([]Game, 0, len(games))
	for _, g := range games {
		if g.ID == "" {
			continue
		}
		if g.ItemsFile == "" {
			g.ItemsFile = DefaultItemsFile
		}
		valid = append(valid, g)
	}
	if len(valid) == 0 {
		return errors.New("registry must contain at least one game with an id")
	}

	if err := SaveGames(filepath.Join(s.dataDir, GamesFile), valid); err != nil {
		return err
	}
	s.games = valid

	found := false
	for _, g := range valid {
		if g.ID == s.current.ID {
			s.current = g
			found = true
			break
		}
	}
	if !found {
		s.current = valid[0]
	}
	return nil
}

// Characters returns a copy of the current catalog's characters.
func (s *Service) Characters() []Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Character, len(s.catalog.Characters))
	copy(out, s.catalog.Characters)
	return out
}

// Items returns a copy of the current catalog's items.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.catalog.Items))
	copy(out, s.catalog.Items)
	return out
}

// Collected reports the collected flag for an item under the current game.
func (s *Service) Collected(characterID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Collected(s.current.ID, characterID, itemID)
}

// SetCollected updates the collected flag under the current game and writes
// the profile through to disk synchronously.
func (s *Service) SetCollected(characterID, itemID string, collected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.profileLoaded {
		if err := s.loadProfileLocked(); err != nil {
			return err
		}
	}
	s.profile.SetCollected(s.current.ID, characterID, itemID, collected)
	return SaveProfile(filepath.Join(s.dataDir, ProgressFile), s.profile)
}

// View derives the selection state for a character and scenario filter from
// the in-memory catalog and the live progress flags.
func (s *Service) View(characterID, scenario string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	gameID := s.current.ID
	return BuildView(s.catalog, func(charID, itemID string) bool {
		return s.profile.Collected(gameID, charID, itemID)
	}, characterID, scenario)
}

// Reload re-reads the registry, catalog, and profile from disk. Used after
// the data files were edited outside the application.
func (s *Service) Reload() (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := LoadGames(filepath.Join(s.dataDir, GamesFile))
	if err != nil {
		return Catalog{}, err
	}
	s.games = games

	found := false
	for _, g := range games {
		if g.ID == s.current.ID {
			s.current = g
			found = true
			break
		}
	}
	if !found {
		s.current = games[0]
	}

	s.profileLoaded = false
	return s.loadCatalogLocked()
}

func (s *Service) catalogPath() string {
	return filepath.Join(s.dataDir, s.current.ItemsFile)
}
