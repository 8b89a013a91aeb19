package tracker

import (
	"slices"
	"sort"
	"strings"
)

// ScenarioAll is the sentinel scenario filter meaning "no filter".
const ScenarioAll = ""

// CollectedFunc reports the live collected flag for an item under the
// active game.
type CollectedFunc func(characterID, itemID string) bool

// VisibleItem pairs an item with its collected flag and the tooltip shown
// next to it in the list.
type VisibleItem struct {
	Item      Item
	Collected bool
	Tooltip   string
}

// View is the derived selection state for one character and scenario
// filter: the visible items, the scenarios available to the character, and
// the collected/total counters.
type View struct {
	CharacterID string
	Scenario    string
	Items       []VisibleItem
	Scenarios   []string
	Collected   int
	Total       int
}

// CandidateItems returns the items available to the character, sorted by
// name ascending. Duplicate ids are kept as-is.
func CandidateItems(items []Item, characterID string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if slices.Contains(it.AvailableFor, characterID) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ScenarioList returns the distinct scenario names among the candidates:
// trimmed, blanks dropped, deduplicated case-insensitively (first casing
// wins), sorted ascending.
func ScenarioList(candidates []Item) []string {
	seen := make(map[string]bool, len(candidates))
	out := []string{}
	for _, it := range candidates {
		s := strings.TrimSpace(it.Scenario)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// BuildView derives the full selection state. A scenario filter that is no
// longer present in the recomputed scenario list resets to ScenarioAll,
// mirroring the filter reset on character change. The scenario match itself
// is trimmed and case-insensitive.
func BuildView(c Catalog, collected CollectedFunc, characterID, scenario string) View {
	v := View{
		CharacterID: characterID,
		Scenario:    scenario,
		Items:       []VisibleItem{},
		Scenarios:   []string{},
	}
	if characterID == "" {
		v.Scenario = ScenarioAll
		return v
	}

	candidates := CandidateItems(c.Items, characterID)
	v.Scenarios = ScenarioList(candidates)

	if v.Scenario != ScenarioAll && !slices.Contains(v.Scenarios, v.Scenario) {
		v.Scenario = ScenarioAll
	}

	for _, it := range candidates {
		if v.Scenario != ScenarioAll && !strings.EqualFold(strings.TrimSpace(it.Scenario), v.Scenario) {
			continue
		}
		flag := collected(characterID, it.ID)
		v.Items = append(v.Items, VisibleItem{Item: it, Collected: flag, Tooltip: Tooltip(it)})
		if flag {
			v.Collected++
		}
	}
	v.Total = len(v.Items)
	return v
}

// Tooltip combines an item's scenario and room for display. Both blank
// yields an empty string; a single blank side falls back to the other.
func Tooltip(it Item) string {
	scenario := strings.TrimSpace(it.Scenario)
	room := strings.TrimSpace(it.Room)
	switch {
	case scenario == "" && room == "":
		return ""
	case scenario == "":
		return room
	case room == "":
		return "Scenario: " + scenario
	default:
		return "Scenario: " + scenario + " " + room
	}
}
