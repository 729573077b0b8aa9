// Package downset implements DownSet (C3): a finite antichain of Ideals,
// interpreted as the union of their downward closures. This is the
// workhorse of the solver — Strategy (package strategy) is a map from
// letters to DownSets, and the fixed-point loop (package solver)
// repeatedly restricts each letter's DownSet to a safe pre-image.
//
// Grounded on original_source/src/downset.rs: Insert/Minimize/RestrictTo/
// SafePreImage follow that file's algorithms exactly, including the
// is_safe_with_roundup / get_image helper structure, re-expressed without
// the Rust arena/rayon machinery (Go's GC and this package's own
// goroutine fan-out take their place).
package downset
