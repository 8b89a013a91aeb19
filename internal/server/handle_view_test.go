package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sismk/tracker/internal/tracker"
)

// testRouter builds a full router over a fresh temp data directory seeded
// with the sample catalog.
func testRouter(t *testing.T) (*chi.Mux, *tracker.Service) {
	t.Helper()
	return testRouterLocked(t, nil)
}

func testRouterLocked(t *testing.T, editorHash []byte) (*chi.Mux, *tracker.Service) {
	t.Helper()

	svc, err := tracker.New(t.TempDir())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.LoadCatalog(); err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	addRoutes(r, logger, svc, editorHash, "")
	return r, svc
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestViewForCharacter(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/view?character=david", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ViewResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.TotalCount != 2 || len(resp.Items) != 2 {
		t.Fatalf("got %d items (total %d), want 2", len(resp.Items), resp.TotalCount)
	}
	// Sorted by name: Boots before Golden nail puller.
	if resp.Items[0].Name != "Boots" {
		t.Errorf("first item = %q, want %q", resp.Items[0].Name, "Boots")
	}
	if len(resp.Scenarios) != 1 || resp.Scenarios[0] != "Outbreak" {
		t.Errorf("scenarios = %v, want [Outbreak]", resp.Scenarios)
	}
	if resp.CollectedCount != 0 {
		t.Errorf("collectedCount = %d, want 0", resp.CollectedCount)
	}
}

func TestViewScenarioFilter(t *testing.T) {
	r, svc := testRouter(t)

	// Add an item in a second scenario through the editor endpoint.
	cat := tracker.Catalog{Characters: svc.Characters(), Items: svc.Items()}
	cat.Items = append(cat.Items, tracker.Item{
		ID: "medal", Name: "Medal", Scenario: "Hellfire", AvailableFor: []string{"david"},
	})
	if err := svc.SaveCatalog(cat); err != nil {
		t.Fatalf("save catalog: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/view?character=david&scenario=Hellfire", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ViewResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if len(resp.Items) != 1 || resp.Items[0].ID != "medal" {
		t.Fatalf("items = %+v, want only 'medal'", resp.Items)
	}
	if resp.Scenario != "Hellfire" {
		t.Errorf("scenario = %q, want %q", resp.Scenario, "Hellfire")
	}
	// Scenario list still covers all of the character's scenarios.
	if len(resp.Scenarios) != 2 {
		t.Errorf("scenarios = %v, want both", resp.Scenarios)
	}
}

func TestViewUnknownScenarioResets(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/view?character=david&scenario=Nope", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ViewResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Scenario != "" {
		t.Errorf("scenario = %q, want reset to empty", resp.Scenario)
	}
	if resp.TotalCount != 2 {
		t.Errorf("totalCount = %d, want the unfiltered 2", resp.TotalCount)
	}
}

func TestViewMissingCharacterParam(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/view", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestViewUnknownCharacter(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/view?character=nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListCharacters(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/characters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []CharacterItem
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 2 || resp[0].ID != "david" {
		t.Fatalf("characters = %+v, want the sample pair", resp)
	}
}
