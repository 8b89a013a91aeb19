// Package tracker implements the data layer of the item tracker: the games
// registry, per-game item catalogs, and the shared progress profile, all
// persisted as indented JSON files in a single data directory. The files are
// meant to be human-editable; see Service.Reload for picking up external
// changes.
package tracker

// Conventional file names inside the data directory.
const (
	GamesFile        = "games.json"
	ProgressFile     = "progress.json"
	DefaultItemsFile = "items.json"
)

// Game is one entry in the games registry. Each game points at its own
// catalog file; all games share the single progress profile.
type Game struct {
	ID        string `json:"Id"`
	Name      string `json:"Name"`
	ItemsFile string `json:"ItemsFile"`
	LogoPath  string `json:"LogoPath"`
}

// Character is a playable character within one catalog.
type Character struct {
	ID       string `json:"Id"`
	Name     string `json:"Name"`
	Portrait string `json:"Portrait"`
}

// Item is one collectible. AvailableFor lists the character ids that can
// ever see the item; Scenario is a free-form grouping tag used for
// filtering.
type Item struct {
	ID           string   `json:"Id"`
	Name         string   `json:"Name"`
	Location     string   `json:"Location"`
	Scenario     string   `json:"Scenario"`
	Room         string   `json:"Room"`
	AvailableFor []string `json:"AvailableFor"`
}

// Catalog is the character and item database for one game.
type Catalog struct {
	Characters []Character `json:"Characters"`
	Items      []Item      `json:"Items"`
}

// ProgressEntry records one collected flag under the composite key
// (GameId, CharacterId, ItemId).
type ProgressEntry struct {
	GameID      string `json:"GameId"`
	CharacterID string `json:"CharacterId"`
	ItemID      string `json:"ItemId"`
	IsCollected bool   `json:"IsCollected"`
	Note        string `json:"Note"`
}

// Profile is the whole set of collected flags across all games, characters,
// and items. One profile per installation.
type Profile struct {
	Name  string          `json:"Name"`
	Items []ProgressEntry `json:"Items"`
}
