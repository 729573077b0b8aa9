// Package runner parses cmd/popcontrol's command-line flags into an
// Options struct, following projectdiscovery/alterx's
// internal/runner.ParseFlags convention: grouped goflags.FlagSet
// sections, an optional --config YAML overlay, and gologger verbosity
// wiring driven by an integer -v flag.
package runner
