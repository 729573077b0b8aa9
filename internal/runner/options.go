package runner

// Options holds the parsed cmd/popcontrol flags (grounded on
// original_source/src/cli.rs's Args, adapted to goflags; Args' clap
// positional AUTOMATON_FILE becomes the explicit -i/--input flag below
// since goflags' pflag-derived FlagSet has no equivalent positional-arg
// convention in projectdiscovery/alterx's own usage).
type Options struct {
	// Input is the path to the automaton description file.
	Input string
	// InputFormat selects the reader: "tikz" or "dot".
	InputFormat string
	// OutputFormat selects the renderer: "plain", "tex", or "csv".
	OutputFormat string
	// Output is where the rendered result is written; empty means stdout.
	Output string
	// StateOrdering selects "input", "alphabetical", or "topological".
	StateOrdering string
	// SolverOutput selects "strategy" (maximal-strategy mode) or "yesno".
	SolverOutput string
	// LogOutput holds the -l/--log-output path. It is parsed but not
	// used: log output is never redirected to it.
	LogOutput string
	// Config is an optional YAML file of defaults (ioformat/config).
	Config string
	// Verbosity is the integer value given to -v/--verbose; -v is not a
	// counting flag, so repeating it does not add up.
	Verbosity int
}
