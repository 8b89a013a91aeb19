package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestEditorSaveRoundTrip(t *testing.T) {
	r, _ := testRouter(t)

	payload := CatalogPayload{
		Characters: []CharacterItem{{ID: "yoko", Name: "Yoko", Portrait: "Images/yoko.png"}},
		Items: []EditorItem{
			{ID: "herb", Name: "Herb", Location: "Office", Scenario: "Decisions", Room: "2F", AvailableFor: []string{"yoko"}},
		},
	}

	w := doJSON(t, r, http.MethodPut, "/api/catalog", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/catalog", nil)
	var got CatalogPayload
	json.NewDecoder(w.Body).Decode(&got)

	if len(got.Characters) != 1 || got.Characters[0].ID != "yoko" {
		t.Fatalf("characters = %+v, want the saved one", got.Characters)
	}
	if len(got.Items) != 1 || got.Items[0].Scenario != "Decisions" {
		t.Fatalf("items = %+v, want the saved one", got.Items)
	}
}

func TestEditorSaveNoValidation(t *testing.T) {
	r, _ := testRouter(t)

	// Duplicate ids and dangling AvailableFor references are tolerated.
	payload := CatalogPayload{
		Characters: []CharacterItem{{ID: "a", Name: "A"}},
		Items: []EditorItem{
			{ID: "dup", Name: "First", AvailableFor: []string{"a"}},
			{ID: "dup", Name: "Second", AvailableFor: []string{"ghost"}},
		},
	}

	w := doJSON(t, r, http.MethodPut, "/api/catalog", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got CatalogPayload
	json.NewDecoder(w.Body).Decode(&got)
	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want both duplicates kept", len(got.Items))
	}
}

func TestEditorLock(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	r, _ := testRouterLocked(t, hash)

	body := `{"characters":[],"items":[]}`

	// No password.
	req := httptest.NewRequest(http.MethodPut, "/api/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without password, got %d", w.Code)
	}

	// Wrong password.
	req = newAuthedRequest(t, http.MethodPut, "/api/catalog", body, "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong password, got %d", w.Code)
	}

	// Correct password.
	req = newAuthedRequest(t, http.MethodPut, "/api/catalog", body, "sesame")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with correct password, got %d: %s", w.Code, w.Body.String())
	}

	// Reads stay open.
	w = doJSON(t, r, http.MethodGet, "/api/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unlocked read, got %d", w.Code)
	}
}

func newAuthedRequest(t *testing.T, method, path, body, password string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer "+password)
	return req
}
