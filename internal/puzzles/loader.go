// Package puzzles adapts the teacher's flat-file puzzle loader/cache
// (internal/puzzles/loader.go) from its 9×9 compact-solution/
// difficulty-key format to a plain batch of spec.md §6 grid strings,
// since the core has no notion of a fixed difficulty ladder. The
// FNV-seed and UTC-daily-date selection idioms survive unchanged —
// they are generic index-selection plumbing, not part of the old
// 9×9 format.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"sudokuengine/internal/grid"
	"sudokuengine/internal/ioformat"
)

// PuzzleFile is the top-level structure of a batch puzzle file: a flat
// list of grid strings in spec.md §6's grammar.
type PuzzleFile struct {
	Version int      `json:"version"`
	Puzzles []string `json:"puzzles"`
}

// Loader manages a batch of pre-generated puzzle strings.
type Loader struct {
	puzzles []string
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads a batch of grid strings from a JSON file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// LoadGlobal loads puzzles into the global loader (singleton).
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the global loader instance.
func Global() *Loader {
	return globalLoader
}

// SetGlobal sets the global loader instance (for testing).
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles creates a loader from grid strings (for testing).
func NewLoaderFromPuzzles(puzzles []string) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of puzzles.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle parses the puzzle string at index into a Grid.
func (l *Loader) GetPuzzle(index int) (*grid.Grid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return nil, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}
	return ioformat.Parse(l.puzzles[index], ioformat.ParseOptions{})
}

// GetPuzzleBySeed deterministically selects a puzzle via an FNV hash
// of seed, the same index-selection scheme as the teacher's loader.
func (l *Loader) GetPuzzleBySeed(seed string) (g *grid.Grid, puzzleIndex int, err error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		return nil, 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	puzzleIndex = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	g, err = l.GetPuzzle(puzzleIndex)
	return
}

// GetDailyPuzzle returns the puzzle selected for a given UTC date.
func (l *Loader) GetDailyPuzzle(date time.Time) (g *grid.Grid, puzzleIndex int, err error) {
	dateStr := date.UTC().Format("2006-01-02")
	return l.GetPuzzleBySeed("daily:" + dateStr)
}

// GetTodayPuzzle returns the puzzle selected for today (UTC).
func (l *Loader) GetTodayPuzzle() (g *grid.Grid, puzzleIndex int, err error) {
	return l.GetDailyPuzzle(time.Now())
}
