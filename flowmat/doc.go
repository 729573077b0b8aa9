// Package flowmat implements the Flow matrix (C5): an n×n matrix of
// coef.Coef bounding token transport along a word. Flow is ordered
// componentwise, supports the two product modes spec.md §4.4/§4.5
// distinguish (an ω-only structural product for K<=1, and a
// finite-aware transport product for K>=2), ω-iteration (the "sharp"
// closure of an idempotent flow), pre-image extraction, and enumeration
// of every flow compatible with a domain Ideal and a digraph.Graph.
//
// Grounded on original_source/src/flow.rs for the matrix shape and the
// squaring-to-idempotence iteration loop, generalized from flow.rs's
// boolean/ω sentinel scheme to the full coef.Coef algebra per spec.md
// §4.4-§4.5.
package flowmat
