package tracker

import (
	"errors"
	"os"
	"strings"
)

// DefaultGame is the single registry entry synthesized when the games file
// is missing or holds no usable entries.
func DefaultGame() Game {
	return Game{
		ID:        "outbreak_file1",
		Name:      "Resident Evil Outbreak: File #1",
		ItemsFile: DefaultItemsFile,
	}
}

// LoadGames reads the games registry at path. Entries with a blank id are
// discarded; a blank ItemsFile falls back to the conventional default. If
// nothing usable remains (file absent or entirely invalid), a single
// default game is synthesized and persisted. The returned slice is never
// empty.
func LoadGames(path string) ([]Game, error) {
	var raw []Game
	err := readJSONFile(path, &raw)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	games := make([]Game, 0, len(raw))
	for _, g := range raw {
		if strings.TrimSpace(g.ID) == "" {
			continue
		}
		if strings.TrimSpace(g.ItemsFile) == "" {
			g.ItemsFile = DefaultItemsFile
		}
		games = append(games, g)
	}

	if len(games) == 0 {
		games = []Game{DefaultGame()}
		if err := SaveGames(path, games); err != nil {
			return nil, err
		}
	}
	return games, nil
}

// SaveGames overwrites the registry file with the full sequence.
func SaveGames(path string, games []Game) error {
	if games == nil {
		games = []Game{}
	}
	return writeJSONFile(path, games)
}
