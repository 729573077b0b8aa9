// Command popcontrol decides the population control problem on an NFA
// read from a TikZ or DOT file and, when controllable, prints a maximal
// winning strategy. See internal/runner for the flag surface.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/popcontrol/automaton"
	"github.com/katalvlaran/popcontrol/internal/runner"
	"github.com/katalvlaran/popcontrol/ioformat/dot"
	"github.com/katalvlaran/popcontrol/ioformat/render"
	"github.com/katalvlaran/popcontrol/ioformat/reorder"
	"github.com/katalvlaran/popcontrol/ioformat/tikz"
	"github.com/katalvlaran/popcontrol/solver"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	content, err := os.ReadFile(opts.Input)
	if err != nil {
		gologger.Fatal().Msgf("popcontrol: reading %q: %s", opts.Input, err)
	}

	nfa, err := parseInput(opts.InputFormat, string(content))
	if err != nil {
		gologger.Fatal().Msgf("popcontrol: parsing %q: %s", opts.Input, err)
	}

	nfa = reorder.Apply(nfa, reorder.Kind(opts.StateOrdering))

	var verdict *solver.Verdict
	if opts.SolverOutput == "yesno" {
		verdict = solver.SolveYesNo(nfa)
	} else {
		verdict = solver.SolveMaximalStrategy(nfa)
	}

	tikzInputPath := ""
	if opts.InputFormat == "tikz" {
		tikzInputPath = opts.Input
	}
	out, err := render.Render(nfa, verdict, outputFormat(opts.OutputFormat), tikzInputPath)
	if err != nil {
		gologger.Fatal().Msgf("popcontrol: rendering result: %s", err)
	}

	if err := writeOutput(opts.Output, out); err != nil {
		gologger.Fatal().Msgf("popcontrol: writing output: %s", err)
	}
}

func parseInput(format, content string) (*automaton.Automaton, error) {
	switch format {
	case "dot":
		return dot.Parse(content)
	default:
		return tikz.Parse(content)
	}
}

func outputFormat(s string) render.Format {
	switch s {
	case "tex":
		return render.LaTeX
	case "csv":
		return render.CSV
	default:
		return render.Plain
	}
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
