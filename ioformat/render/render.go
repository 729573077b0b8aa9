package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/popcontrol/automaton"
	"github.com/katalvlaran/popcontrol/solver"
	"github.com/projectdiscovery/fasttemplate"
)

// Format selects one of the three output serializations.
type Format string

const (
	Plain Format = "plain"
	CSV   Format = "csv"
	LaTeX Format = "latex"
)

// Render serializes nfa's description and v's verdict in the requested
// format. tikzInputPath is only used by LaTeX, to note the source file
// in the rendered document (empty means "not derived from a TikZ file").
func Render(nfa automaton.NFAAdapter, v *solver.Verdict, format Format, tikzInputPath string) (string, error) {
	switch format {
	case Plain:
		return renderPlain(nfa, v), nil
	case CSV:
		return renderCSV(nfa, v), nil
	case LaTeX:
		return renderLatex(nfa, v, tikzInputPath), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderPlain(nfa automaton.NFAAdapter, v *solver.Verdict) string {
	var b strings.Builder
	b.WriteString("NFA\n\n")
	fmt.Fprintf(&b, "States: { %s }\n", statesStr(nfa))
	fmt.Fprintf(&b, "Initial: { %s }\n", indicesStr(nfa, nfa.InitialStates()))
	fmt.Fprintf(&b, "Accepting: { %s }\n", indicesStr(nfa, nfa.AcceptingStates()))
	fmt.Fprintf(&b, "Transitions:\n%s\n", transitionsStr(nfa))
	b.WriteString("\n")
	b.WriteString(v.String())
	return b.String()
}

func renderCSV(nfa automaton.NFAAdapter, v *solver.Verdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# controllable,K\n%t,%d\n", v.Controllable, v.K)
	fmt.Fprintf(&b, "Σ,%s\n", strings.Join(nfa.States(), ","))
	b.WriteString(v.Strategy.CSV())
	return b.String()
}

const latexTemplate = `\documentclass{article}
\usepackage{tikz}
\begin{document}

{{is_tikz_input_note}}

States: $\{ {{states}} \}$

Initial: $\{ {{initial}} \}$

Accepting: $\{ {{accepting}} \}$

Transitions:
\begin{verbatim}
{{transitions}}
\end{verbatim}

Answer: {{answer}}

Maximal winning strategy:
\begin{verbatim}
{{strategy}}
\end{verbatim}

\end{document}
`

func renderLatex(nfa automaton.NFAAdapter, v *solver.Verdict, tikzInputPath string) string {
	note := ""
	if tikzInputPath != "" {
		note = "Derived from TikZ input: " + tikzInputPath
	}

	answer := "NO (uncontrollable)"
	if v.Controllable {
		answer = "YES (controllable)"
	}

	values := map[string]interface{}{
		"is_tikz_input_note": note,
		"states":             statesStr(nfa),
		"initial":            indicesStr(nfa, nfa.InitialStates()),
		"accepting":          indicesStr(nfa, nfa.AcceptingStates()),
		"transitions":        transitionsStr(nfa),
		"answer":             answer,
		"strategy":           v.Strategy.String(),
	}
	rendered := fasttemplate.ExecuteStringStd(latexTemplate, "{{", "}}", values)
	return strings.ReplaceAll(rendered, "ω", "w")
}

func statesStr(nfa automaton.NFAAdapter) string {
	return strings.Join(nfa.States(), " , ")
}

func indicesStr(nfa automaton.NFAAdapter, indices []int) string {
	states := nfa.States()
	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = states[idx]
	}
	return strings.Join(labels, " , ")
}

func transitionsStr(nfa automaton.NFAAdapter) string {
	states := nfa.States()
	var lines []string
	for _, letter := range nfa.Alphabet() {
		g := nfa.GetEdges()[letter]
		for from := 0; from < nfa.N(); from++ {
			for _, to := range g.Successors(from) {
				lines = append(lines, "\t"+states[from]+" --"+letter+"--> "+states[to])
			}
		}
	}
	return strings.Join(lines, "\n")
}
