package runner

import (
	"github.com/katalvlaran/popcontrol/ioformat/config"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// ParseFlags builds the grouped goflags.FlagSet and parses os.Args into
// an Options, following projectdiscovery/alterx/internal/runner's
// ParseFlags shape: grouped flags, an optional --config overlay
// (ioformat/config, layered the same way alterx's MergeConfigFile is),
// and gologger verbosity wired from the integer -v.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Decide the population control problem on an NFA and, when controllable, synthesize a maximal winning strategy.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "path to the automaton description file"),
		flagSet.StringVarP(&opts.InputFormat, "from", "f", "tikz", "input format (tikz, dot)"),
		flagSet.StringVarP(&opts.StateOrdering, "state-ordering", "s", "input", "state reordering (input, alphabetical, topological)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputFormat, "to", "t", "plain", "output format (plain, tex, csv)"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "where to write the result; defaults to stdout"),
		flagSet.StringVar(&opts.SolverOutput, "solver-output", "strategy", "solver output (strategy, yesno)"),
	)

	flagSet.CreateGroup("logging", "Logging",
		flagSet.IntVarP(&opts.Verbosity, "verbose", "v", 0, "verbosity level; any value above 0 enables verbose logging"),
		flagSet.StringVarP(&opts.LogOutput, "log-output", "l", "", "log file path (accepted but not used; logs go to the logger's default output)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "optional YAML file of CLI defaults"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		cfg, err := config.LoadFile(opts.Config)
		if err != nil {
			gologger.Fatal().Msgf("failed to read config file: %s\n", err)
		}
		applyConfigDefaults(opts, cfg)
	}

	if opts.Verbosity > 0 {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Input == "" {
		gologger.Fatal().Msgf("popcontrol: no input file given (-i/--input)")
	}

	return opts
}

// applyConfigDefaults overlays cfg onto opts wherever opts still holds
// the flag's default value ("input", "strategy", "plain", 0). A flag set
// on the command line to any other value takes priority over the config
// file; a flag set explicitly to its default value is overridden by it.
func applyConfigDefaults(opts *Options, cfg config.Config) {
	if opts.StateOrdering == "input" && cfg.StateOrdering != "" {
		opts.StateOrdering = cfg.StateOrdering
	}
	if opts.SolverOutput == "strategy" && cfg.SolverOutput != "" {
		opts.SolverOutput = cfg.SolverOutput
	}
	if opts.OutputFormat == "plain" && cfg.Format != "" {
		opts.OutputFormat = cfg.Format
	}
	if opts.Verbosity == 0 && cfg.Verbosity != 0 {
		opts.Verbosity = cfg.Verbosity
	}
}
