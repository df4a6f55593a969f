// Package http is the gin-gonic REST adapter over the core engine,
// grounded on the teacher's internal/transport/http/routes.go (gin.H{}
// response shape, route registration pattern, JSON body binding) and
// trimmed to the operations spec.md §1 actually scopes the core
// around: parse/format, solve (the human pipeline, bruteforce and
// exact-cover), rate, score, and generate. The teacher's
// session-token/practice-technique surface belongs to a gameplay
// product the core engine itself has no notion of, so it is not
// carried here; the core stays a library wrapped by a thin HTTP shell,
// per spec.md §1's Non-goal on network interfaces. The daily-puzzle
// idea survives in simplified form, backed by internal/puzzles.
package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sudokuengine/internal/backtrack"
	"sudokuengine/internal/dlx"
	"sudokuengine/internal/generator"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/ioformat"
	"sudokuengine/internal/pipeline"
	"sudokuengine/internal/puzzles"
	"sudokuengine/internal/solve"
)

// Config carries the adapter's runtime settings. The teacher's Config
// also held a JWTSecret for its session-token surface, which has no
// counterpart here; PuzzlesFile survives, backing /api/daily.
type Config struct {
	Port        string
	PuzzlesFile string
}

// RegisterRoutes wires every handler onto r, in the teacher's flat
// registration style (one r.GET/r.POST call per route, no route
// groups) since the route count here is small enough not to need them.
// If cfg.PuzzlesFile is set, it is loaded into the global puzzles.Loader
// before /api/daily is registered; a load failure is logged and
// /api/daily responds 503 rather than failing startup, matching the
// teacher's fallback-to-on-demand-generation posture.
func RegisterRoutes(r *gin.Engine, cfg *Config) {
	r.GET("/health", healthHandler)
	r.POST("/api/parse", parseHandler)
	r.POST("/api/solve", solveHandler)
	r.POST("/api/bruteforce", bruteforceHandler)
	r.POST("/api/dlx", dlxHandler)
	r.POST("/api/rate", rateHandler)
	r.POST("/api/score", scoreHandler)
	r.POST("/api/generate", generateHandler)
	r.POST("/api/validate", validateHandler)

	if cfg != nil && cfg.PuzzlesFile != "" {
		if err := puzzles.LoadGlobal(cfg.PuzzlesFile); err != nil {
			log.Printf("Warning: could not load puzzles from %s: %v", cfg.PuzzlesFile, err)
		}
	}
	r.GET("/api/daily", dailyHandler)
}

func dailyHandler(c *gin.Context) {
	loader := puzzles.Global()
	if loader == nil || loader.Count() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no puzzles loaded"})
		return
	}
	g, idx, err := loader.GetTodayPuzzle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"index": idx,
		"grid":  ioformat.Format(g),
	})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GridRequest is the common request body for every endpoint that takes
// a grid string, matching spec.md §6's grid string grammar.
type GridRequest struct {
	Grid string `json:"grid" binding:"required"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

func (req GridRequest) parse() (*grid.Grid, error) {
	return ioformat.Parse(req.Grid, ioformat.ParseOptions{W: req.W, H: req.H})
}

func parseHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"w":        g.W,
		"h":        g.H,
		"n":        g.N,
		"grid":     ioformat.Format(g),
		"conflict": len(solve.FindConflicts(g)) > 0,
	})
}

func solveHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solved, log, err := pipeline.Solve(g, nil)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	steps := make([]gin.H, len(log))
	for i, step := range log {
		steps[i] = gin.H{
			"kind":     step.Kind,
			"clues":    step.Clues,
			"affected": step.Affected,
			"values":   step.Values,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"grid":   ioformat.Format(solved),
		"solved": solve.IsSolved(solved),
		"steps":  steps,
	})
}

func bruteforceHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stream := backtrack.Bruteforce(g)
	defer stream.Close()

	solution, ok := stream.Advance()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no solution"})
		return
	}
	_, hasMore := stream.Advance()

	c.JSON(http.StatusOK, gin.H{
		"grid":   ioformat.Format(solution),
		"unique": !hasMore,
	})
}

func dlxHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stream := dlx.Solve(g)
	defer stream.Close()

	solution, ok := stream.Advance()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no solution"})
		return
	}
	_, hasMore := stream.Advance()

	c.JSON(http.StatusOK, gin.H{
		"grid":   ioformat.Format(solution),
		"unique": !hasMore,
	})
}

func rateHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating, err := pipeline.Rate(g)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

func scoreHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	score, err := pipeline.Score(g)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}

// GenerateRequest is the body for /api/generate, matching spec.md §6's
// external generator driver contract: dimensions, a target given
// count, a seed, and a symmetry label.
type GenerateRequest struct {
	W        int    `json:"w" binding:"required"`
	H        int    `json:"h" binding:"required"`
	Givens   int    `json:"givens" binding:"required"`
	Seed     int64  `json:"seed"`
	Symmetry string `json:"symmetry"`
}

var symmetryByName = map[string]generator.Symmetry{
	"":          generator.SymmetryNone,
	"none":      generator.SymmetryNone,
	"rotate90":  generator.SymmetryRotate90,
	"rotate180": generator.SymmetryRotate180,
	"mirrorx":   generator.SymmetryMirrorX,
	"mirrory":   generator.SymmetryMirrorY,
	"mirrorxy":  generator.SymmetryMirrorXY,
}

func generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sym, ok := symmetryByName[req.Symmetry]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown symmetry " + req.Symmetry})
		return
	}

	full, err := generator.FullGrid(req.W, req.H, req.Seed)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	puzzle, err := generator.Dig(full, req.Givens, req.Seed, sym)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"grid":     ioformat.Format(puzzle),
		"solution": ioformat.Format(full),
		"givens":   len(puzzle.Filled()),
	})
}

func validateHandler(c *gin.Context) {
	var req GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conflicts := solve.FindConflicts(g)
	conflictOut := make([]gin.H, len(conflicts))
	for i, conf := range conflicts {
		conflictOut[i] = gin.H{"a": conf.A, "b": conf.B, "value": conf.Value}
	}

	c.JSON(http.StatusOK, gin.H{
		"conflicts": conflictOut,
		"unique":    len(conflicts) == 0 && solve.IsUnique(g),
	})
}
