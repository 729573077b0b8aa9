// Package config loads a YAML file of CLI defaults for cmd/popcontrol —
// state ordering, solver output mode, and logging verbosity — so a user
// can pin their preferred flags once instead of repeating them on every
// invocation.
//
// Grounded on projectdiscovery/alterx's `--config` / config.yaml
// pattern (internal/runner.ParseFlags's `flagSet.MergeConfigFile`):
// this package plays the same "load this YAML onto the Options struct"
// role but for the subset of flags SPEC_FULL.md's CLI names, using
// gopkg.in/yaml.v3 directly rather than goflags's own merge path, so the
// solver-specific fields gain ordinary struct tags instead of goflags
// marshaling conventions.
package config
