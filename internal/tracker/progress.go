package tracker

import (
	"errors"
	"os"
)

// LoadProfile reads the progress file, creating an empty "Default" profile
// when the file is missing. Entries written before multi-game support carry
// no GameId; those are assigned firstGameID and, if anything changed, the
// normalized profile is re-saved immediately.
func LoadProfile(path, firstGameID string) (Profile, error) {
	var p Profile
	err := readJSONFile(path, &p)
	if errors.Is(err, os.ErrNotExist) {
		p = Profile{Name: "Default", Items: []ProgressEntry{}}
		if err := SaveProfile(path, p); err != nil {
			return Profile{}, err
		}
		return p, nil
	}
	if err != nil {
		return Profile{}, err
	}

	if p.Name == "" {
		p.Name = "Default"
	}
	if p.Items == nil {
		p.Items = []ProgressEntry{}
	}

	changed := false
	for i := range p.Items {
		if p.Items[i].GameID == "" {
			p.Items[i].GameID = firstGameID
			changed = true
		}
	}
	if changed {
		if err := SaveProfile(path, p); err != nil {
			return Profile{}, err
		}
	}
	return p, nil
}

// SaveProfile overwrites the progress file with the full profile.
func SaveProfile(path string, p Profile) error {
	if p.Items == nil {
		p.Items = []ProgressEntry{}
	}
	return writeJSONFile(path, p)
}

// Collected reports whether any entry with the exact composite key is
// marked collected. A key never written means not collected.
func (p *Profile) Collected(gameID, characterID, itemID string) bool {
	for i := range p.Items {
		e := &p.Items[i]
		if e.GameID == gameID && e.CharacterID == characterID && e.ItemID == itemID && e.IsCollected {
			return true
		}
	}
	return false
}

// SetCollected finds the entry with the composite key and updates it, or
// appends a fresh one if absent. It does not persist; callers save the
// profile after mutating.
func (p *Profile) SetCollected(gameID, characterID, itemID string, collected bool) {
	for i := range p.Items {
		e := &p.Items[i]
		if e.GameID == gameID && e.CharacterID == characterID && e.ItemID == itemID {
			e.IsCollected = collected
			return
		}
	}
	p.Items = append(p.Items, ProgressEntry{
		GameID:      gameID,
		CharacterID: characterID,
		ItemID:      itemID,
		IsCollected: collected,
	})
}
