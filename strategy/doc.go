// Package strategy implements the Strategy map σ : Σ → DownSet (C7): from
// configuration x, letter a may be played iff x ∈ σ(a). GetMaximal starts
// every letter at the top downset {(ω,...,ω)}; RestrictTo shrinks each
// letter's downset to the safe pre-image of a winning downset through
// that letter's graph.
//
// Grounded on original_source/src/strategy.rs, including its
// test_strategy unit test (ported into strategy_test.go), generalized
// from its HashMap<Letter, DownSet> to an explicit sorted-letter Go map
// plus deterministic iteration order for reproducible CSV/plain output.
package strategy
