// Package render serializes a solved automaton (an automaton.NFAAdapter
// plus a solver.Verdict) into the three output formats spec.md §6
// names: plain text, CSV, and LaTeX.
//
// Grounded on original_source/src/solution.rs: Plain mirrors Solution's
// Display impl plus Strategy's own Display; CSV mirrors
// strategy.rs/downset.rs's csv-oriented helpers (exposed here as
// strategy.Strategy.CSV); LaTeX mirrors Solution::as_latex, with Tera's
// templating replaced by github.com/projectdiscovery/fasttemplate (the
// templating engine projectdiscovery/alterx's replacer.go wires for the
// same "substitute named placeholders into a static template" need) and
// the embedded .tex skeleton kept inline since the original's
// latex/solution.template.tex asset is not part of this module.
package render
