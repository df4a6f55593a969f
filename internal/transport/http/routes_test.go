package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudokuengine/internal/puzzles"
)

const s1Puzzle = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &Config{})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestParseHandlerRoundTrip(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/parse", GridRequest{Grid: s1Puzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["grid"] != s1Puzzle {
		t.Errorf("grid = %v, want %q", resp["grid"], s1Puzzle)
	}
	if resp["conflict"] != false {
		t.Errorf("conflict = %v, want false", resp["conflict"])
	}
}

func TestParseHandlerRejectsMalformedGrid(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/parse", GridRequest{Grid: "not-a-grid"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSolveHandlerReachesCompletion(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/solve", GridRequest{Grid: s1Puzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["solved"] != true {
		t.Errorf("solved = %v, want true", resp["solved"])
	}
}

func TestBruteforceHandlerFindsUniqueSolution(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/bruteforce", GridRequest{Grid: s1Puzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["unique"] != true {
		t.Errorf("unique = %v, want true", resp["unique"])
	}
}

func TestDlxHandlerFindsUniqueSolution(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/dlx", GridRequest{Grid: s1Puzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["unique"] != true {
		t.Errorf("unique = %v, want true", resp["unique"])
	}
}

func TestRateAndScoreHandlers(t *testing.T) {
	r := setupRouter()
	if w := postJSON(t, r, "/api/rate", GridRequest{Grid: s1Puzzle}); w.Code != http.StatusOK {
		t.Fatalf("rate status = %d, body = %s", w.Code, w.Body.String())
	}
	if w := postJSON(t, r, "/api/score", GridRequest{Grid: s1Puzzle}); w.Code != http.StatusOK {
		t.Fatalf("score status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGenerateHandlerSucceeds(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/generate", GenerateRequest{W: 3, H: 3, Givens: 40, Seed: 7, Symmetry: "rotate180"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGenerateHandlerRejectsUnknownSymmetry(t *testing.T) {
	r := setupRouter()
	w := postJSON(t, r, "/api/generate", GenerateRequest{W: 3, H: 3, Givens: 40, Symmetry: "diagonal"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDailyHandlerWithoutPuzzlesIsUnavailable(t *testing.T) {
	original := puzzles.Global()
	defer puzzles.SetGlobal(original)
	puzzles.SetGlobal(nil)

	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/daily", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestDailyHandlerReturnsLoadedPuzzle(t *testing.T) {
	original := puzzles.Global()
	defer puzzles.SetGlobal(original)
	puzzles.SetGlobal(puzzles.NewLoaderFromPuzzles([]string{s1Puzzle}))

	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/daily", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["grid"] != s1Puzzle {
		t.Errorf("grid = %v, want %q", resp["grid"], s1Puzzle)
	}
}

func TestValidateHandlerDetectsConflict(t *testing.T) {
	r := setupRouter()
	conflicting := "113020600900305001001806400008102900700000008006708200002609500800203009005010300"
	w := postJSON(t, r, "/api/validate", GridRequest{Grid: conflicting})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	conflicts, _ := resp["conflicts"].([]any)
	if len(conflicts) == 0 {
		t.Error("expected at least one conflict for duplicate row digits")
	}
}
