//go:build js && wasm

// Command wasm adapts the teacher's browser bridge (cmd/wasm/main.go)
// from its 81-cell Board/dp API to the generalized core: every
// exported function takes and returns spec.md §6 grid strings instead
// of number[81]/number[81][] arrays, since the new engine has no fixed
// cell count to marshal against. The teacher's gameplay-specific
// surface (error-fixing during solveAll, difficulty-ladder puzzle
// generation, session puzzle IDs) has no counterpart in the core and
// is not carried here; what survives is the teacher's js.FuncOf
// exporting pattern and its toJSValue JSON bridge.
package main

import (
	"encoding/json"
	"syscall/js"

	"sudokuengine/internal/backtrack"
	"sudokuengine/internal/dlx"
	"sudokuengine/internal/generator"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/ioformat"
	"sudokuengine/internal/pipeline"
	"sudokuengine/internal/solve"
)

// toJSValue converts a Go value to a JavaScript value via JSON.
func toJSValue(v interface{}) js.Value {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(nil)
	}
	return js.Global().Get("JSON").Call("parse", string(jsonBytes))
}

func errValue(err error) js.Value {
	return toJSValue(map[string]interface{}{"error": err.Error()})
}

// parseGrid parses args[0] (grid string), with an optional explicit
// (args[1], args[2]) box width/height, the js.FuncOf argument shape
// every handler below shares.
func parseGrid(args []js.Value) (*grid.Grid, error) {
	if len(args) < 1 {
		return nil, errMissingGrid
	}
	opts := ioformat.ParseOptions{}
	if len(args) >= 3 {
		opts.W = args[1].Int()
		opts.H = args[2].Int()
	}
	return ioformat.Parse(args[0].String(), opts)
}

var errMissingGrid = jsArgError("grid string required")

type jsArgError string

func (e jsArgError) Error() string { return string(e) }

func wasmSolve(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	solved, log, err := pipeline.Solve(g, nil)
	if err != nil {
		return errValue(err)
	}
	steps := make([]map[string]interface{}, len(log))
	for i, step := range log {
		steps[i] = map[string]interface{}{
			"kind":     step.Kind,
			"clues":    step.Clues,
			"affected": step.Affected,
			"values":   step.Values,
		}
	}
	return toJSValue(map[string]interface{}{
		"grid":   ioformat.Format(solved),
		"solved": solve.IsSolved(solved),
		"steps":  steps,
	})
}

func wasmRate(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	rating, err := pipeline.Rate(g)
	if err != nil {
		return errValue(err)
	}
	return toJSValue(map[string]interface{}{"rating": rating})
}

func wasmScore(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	score, err := pipeline.Score(g)
	if err != nil {
		return errValue(err)
	}
	return toJSValue(map[string]interface{}{"score": score})
}

func wasmBruteforce(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	stream := backtrack.Bruteforce(g)
	defer stream.Close()
	solution, ok := stream.Advance()
	if !ok {
		return toJSValue(map[string]interface{}{"error": "no solution"})
	}
	_, hasMore := stream.Advance()
	return toJSValue(map[string]interface{}{
		"grid":   ioformat.Format(solution),
		"unique": !hasMore,
	})
}

func wasmDLX(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	stream := dlx.Solve(g)
	defer stream.Close()
	solution, ok := stream.Advance()
	if !ok {
		return toJSValue(map[string]interface{}{"error": "no solution"})
	}
	_, hasMore := stream.Advance()
	return toJSValue(map[string]interface{}{
		"grid":   ioformat.Format(solution),
		"unique": !hasMore,
	})
}

func wasmValidate(this js.Value, args []js.Value) interface{} {
	g, err := parseGrid(args)
	if err != nil {
		return errValue(err)
	}
	conflicts := solve.FindConflicts(g)
	return toJSValue(map[string]interface{}{
		"conflicts": conflicts,
		"unique":    len(conflicts) == 0 && solve.IsUnique(g),
	})
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

// wasmGenerate takes (w, h, givens, seed, symmetry).
func wasmGenerate(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return toJSValue(map[string]interface{}{"error": "w, h, givens and seed are required"})
	}
	w, h, givens := args[0].Int(), args[1].Int(), args[2].Int()
	seed := int64(args[3].Float())
	symName := ""
	if len(args) >= 5 {
		symName = args[4].String()
	}
	sym, ok := symmetryByName[symName]
	if !ok {
		return toJSValue(map[string]interface{}{"error": "unknown symmetry " + symName})
	}

	full, err := generator.FullGrid(w, h, seed)
	if err != nil {
		return errValue(err)
	}
	puzzle, err := generator.Dig(full, givens, seed, sym)
	if err != nil {
		return errValue(err)
	}
	return toJSValue(map[string]interface{}{
		"grid":     ioformat.Format(puzzle),
		"solution": ioformat.Format(full),
		"givens":   len(puzzle.Filled()),
	})
}

func main() {
	exports := map[string]interface{}{
		"solve":      js.FuncOf(wasmSolve),
		"rate":       js.FuncOf(wasmRate),
		"score":      js.FuncOf(wasmScore),
		"bruteforce": js.FuncOf(wasmBruteforce),
		"dlx":        js.FuncOf(wasmDLX),
		"validate":   js.FuncOf(wasmValidate),
		"generate":   js.FuncOf(wasmGenerate),
	}

	js.Global().Set("SudokuWasm", js.ValueOf(exports))
	js.Global().Call("dispatchEvent", js.Global().Get("CustomEvent").New("wasmReady"))

	select {}
}
