package tracker

import (
	"errors"
	"os"
	"path/filepath"
)

// LoadCatalog reads the catalog at path. A missing file is materialized
// immediately: the conventional default file name gets the sample catalog,
// any other name starts empty. Present files are parsed as-is; nil
// Characters/Items collapse to empty slices. Malformed JSON is not
// recovered — the parse error propagates to the caller.
func LoadCatalog(path string) (Catalog, error) {
	var c Catalog
	err := readJSONFile(path, &c)
	if errors.Is(err, os.ErrNotExist) {
		if filepath.Base(path) == DefaultItemsFile {
			c = SampleCatalog()
		} else {
			c = Catalog{}
		}
		normalizeCatalog(&c)
		if err := SaveCatalog(path, c); err != nil {
			return Catalog{}, err
		}
		return c, nil
	}
	if err != nil {
		return Catalog{}, err
	}
	normalizeCatalog(&c)
	return c, nil
}

// SaveCatalog overwrites the catalog file unconditionally. No merge, no
// concurrency control beyond last write wins.
func SaveCatalog(path string, c Catalog) error {
	normalizeCatalog(&c)
	return writeJSONFile(path, c)
}

func normalizeCatalog(c *Catalog) {
	if c.Characters == nil {
		c.Characters = []Character{}
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
}

// SampleCatalog is the seed database written the first time the default
// catalog file is missing.
func SampleCatalog() Catalog {
	return Catalog{
		Characters: []Character{
			{ID: "david", Name: "David", Portrait: "Images/Characters/david.png"},
			{ID: "shared", Name: "Shared items", Portrait: "Images/Characters/shared.png"},
		},
		Items: []Item{
			{
				ID:           "boots_room30",
				Name:         "Boots",
				Location:     "Around room #30",
				Scenario:     "Outbreak",
				Room:         "Room #30",
				AvailableFor: []string{"david", "shared"},
			},
			{
				ID:           "golden_nail_puller",
				Name:         "Golden nail puller",
				Location:     "In the storeroom, path D",
				Scenario:     "Outbreak",
				Room:         "Storeroom",
				AvailableFor: []string{"david", "shared"},
			},
		},
	}
}
