package tracker

import (
	"reflect"
	"testing"
)

func neverCollected(string, string) bool { return false }

func filterCatalog() Catalog {
	return Catalog{
		Characters: []Character{{ID: "x"}, {ID: "y"}},
		Items: []Item{
			{ID: "a", Name: "Axe", Scenario: "Outbreak", AvailableFor: []string{"x"}},
			{ID: "b", Name: "Bow", Scenario: "Hellfire", AvailableFor: []string{"y"}},
			{ID: "c", Name: "Coin", Scenario: "Hellfire", AvailableFor: []string{"x", "y"}},
		},
	}
}

func visibleIDs(v View) []string {
	ids := make([]string, len(v.Items))
	for i, it := range v.Items {
		ids[i] = it.Item.ID
	}
	return ids
}

func TestBuildViewFiltersByCharacter(t *testing.T) {
	v := BuildView(filterCatalog(), neverCollected, "x", ScenarioAll)

	if got, want := visibleIDs(v), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible items = %v, want %v", got, want)
	}
}

func TestBuildViewFiltersByScenario(t *testing.T) {
	v := BuildView(filterCatalog(), neverCollected, "x", "Outbreak")

	if got, want := visibleIDs(v), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible items = %v, want %v", got, want)
	}
	if v.Scenario != "Outbreak" {
		t.Fatalf("scenario = %q, want %q", v.Scenario, "Outbreak")
	}
}

func TestBuildViewScenarioMatchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	c := Catalog{Items: []Item{
		{ID: "a", Name: "Axe", Scenario: "  outbreak ", AvailableFor: []string{"x"}},
	}}
	v := BuildView(c, neverCollected, "x", "outbreak")

	if len(v.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(v.Items))
	}
}

func TestBuildViewSortsByName(t *testing.T) {
	c := Catalog{Items: []Item{
		{ID: "3", Name: "Zulu", AvailableFor: []string{"x"}},
		{ID: "1", Name: "Alpha", AvailableFor: []string{"x"}},
		{ID: "2", Name: "Mike", AvailableFor: []string{"x"}},
	}}
	v := BuildView(c, neverCollected, "x", ScenarioAll)

	if got, want := visibleIDs(v), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestBuildViewResetsInvalidScenario(t *testing.T) {
	// "Outbreak" exists only for character x; switching to y must reset the
	// filter to the sentinel and show all of y's items.
	v := BuildView(filterCatalog(), neverCollected, "y", "Outbreak")

	if v.Scenario != ScenarioAll {
		t.Fatalf("scenario = %q, want reset to sentinel", v.Scenario)
	}
	if got, want := visibleIDs(v), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible items = %v, want %v", got, want)
	}
}

func TestScenarioListDedupesAndSorts(t *testing.T) {
	items := []Item{
		{Scenario: " Outbreak "},
		{Scenario: "outbreak"},
		{Scenario: "Hellfire"},
		{Scenario: ""},
		{Scenario: "   "},
	}
	got := ScenarioList(items)
	want := []string{"Hellfire", "Outbreak"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("scenarios = %v, want %v", got, want)
	}
}

func TestScenarioListStableAcrossFilterChanges(t *testing.T) {
	c := filterCatalog()
	all := BuildView(c, neverCollected, "x", ScenarioAll)
	filtered := BuildView(c, neverCollected, "x", "Outbreak")

	if !reflect.DeepEqual(all.Scenarios, filtered.Scenarios) {
		t.Fatalf("scenario list changed with the filter: %v vs %v", all.Scenarios, filtered.Scenarios)
	}
}

func TestBuildViewCounters(t *testing.T) {
	collected := map[string]bool{"a": true, "c": true}
	fn := func(_, itemID string) bool { return collected[itemID] }

	v := BuildView(filterCatalog(), fn, "x", ScenarioAll)
	if v.Total != 2 {
		t.Fatalf("total = %d, want 2", v.Total)
	}
	if v.Collected != 2 {
		t.Fatalf("collected = %d, want 2", v.Collected)
	}

	// Counters follow the visible set, not the whole catalog.
	v = BuildView(filterCatalog(), fn, "x", "Outbreak")
	if v.Total != 1 || v.Collected != 1 {
		t.Fatalf("filtered counters = %d/%d, want 1/1", v.Collected, v.Total)
	}
}

func TestBuildViewEmptyCharacter(t *testing.T) {
	v := BuildView(filterCatalog(), neverCollected, "", "Outbreak")

	if len(v.Items) != 0 || len(v.Scenarios) != 0 {
		t.Fatalf("empty character must yield an empty view, got %+v", v)
	}
	if v.Collected != 0 || v.Total != 0 {
		t.Fatalf("counters = %d/%d, want 0/0", v.Collected, v.Total)
	}
}

func TestBuildViewDuplicateItemIDsTolerated(t *testing.T) {
	c := Catalog{Items: []Item{
		{ID: "dup", Name: "First", AvailableFor: []string{"x"}},
		{ID: "dup", Name: "Second", AvailableFor: []string{"x"}},
	}}
	v := BuildView(c, neverCollected, "x", ScenarioAll)

	if len(v.Items) != 2 {
		t.Fatalf("got %d items, want both duplicates visible", len(v.Items))
	}
}

func TestTooltip(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"both blank", Item{}, ""},
		{"room only", Item{Room: "Room #30"}, "Room #30"},
		{"scenario only", Item{Scenario: "Outbreak"}, "Scenario: Outbreak"},
		{"both", Item{Scenario: "Outbreak", Room: "Room #30"}, "Scenario: Outbreak Room #30"},
		{"whitespace trimmed", Item{Scenario: " Outbreak ", Room: "  "}, "Scenario: Outbreak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tooltip(tt.item); got != tt.want {
				t.Errorf("Tooltip = %q, want %q", got, tt.want)
			}
		})
	}
}
