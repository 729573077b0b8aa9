package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/digraph"
	"github.com/katalvlaran/popcontrol/downset"
	"github.com/katalvlaran/popcontrol/ideal"
)

// Strategy is a map from letters to DownSets. All non-empty downsets
// share the same dimension: the state count of the (complete) NFA. The
// downset for a letter is the set of configurations from which the
// strategy allows that letter to be played.
type Strategy struct {
	dim      int
	byLetter map[string]*downset.DownSet
}

// GetMaximal returns the strategy that allows every letter everywhere:
// each letter maps to the singleton downset {(ω,...,ω)}.
func GetMaximal(dim int, letters []string) *Strategy {
	s := &Strategy{dim: dim, byLetter: make(map[string]*downset.DownSet, len(letters))}
	for _, a := range letters {
		s.byLetter[a] = downset.FromIdeals([]ideal.Ideal{ideal.New(dim, coef.Omega)})
	}
	return s
}

// Letters returns the strategy's alphabet in sorted order.
func (s *Strategy) Letters() []string {
	out := make([]string, 0, len(s.byLetter))
	for a := range s.byLetter {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// DownSetFor returns the downset associated with letter a, or nil if a is
// not in the strategy's alphabet.
func (s *Strategy) DownSetFor(a string) *downset.DownSet {
	return s.byLetter[a]
}

// IsDefinedOn reports whether some letter may be played from source:
// ∃a. σ(a).Contains(source).
func (s *Strategy) IsDefinedOn(source ideal.Ideal) bool {
	for _, d := range s.byLetter {
		if d.Contains(source) {
			return true
		}
	}
	return false
}

// RestrictTo shrinks every letter's downset to the intersection with the
// safe pre-image of safe through that letter's graph, with bound k.
// Returns whether any letter's downset changed.
func (s *Strategy) RestrictTo(safe *downset.DownSet, edgesPerLetter map[string]*digraph.Graph, k int) bool {
	changed := false
	for _, a := range s.Letters() {
		g, ok := edgesPerLetter[a]
		if !ok {
			panic(fmt.Sprintf("strategy: no graph registered for letter %q", a))
		}
		safePreImage := safe.SafePreImage(g, k)
		if s.byLetter[a].RestrictTo(safePreImage) {
			changed = true
		}
	}
	return changed
}

// CSV renders the strategy as one "<letter>,<coefficients>" line per
// (letter, ideal) pair, sorted by letter then by ideal key (spec.md §6).
func (s *Strategy) CSV() string {
	var lines []string
	for _, a := range s.Letters() {
		for _, id := range s.byLetter[a].Ideals() {
			lines = append(lines, a+","+id.CSV())
		}
	}
	return strings.Join(lines, "\n")
}

// String renders the plain-text strategy format of spec.md §6: for each
// letter, either "Never play action '<a>'" or "Play action '<a>' in the
// downward-closure of" followed by the letter's ideals.
func (s *Strategy) String() string {
	var parts []string
	for _, a := range s.Letters() {
		d := s.byLetter[a]
		if d.IsEmpty() {
			parts = append(parts, fmt.Sprintf("Never play action '%s'", a))
			continue
		}
		parts = append(parts, fmt.Sprintf("Play action '%s' in the downward-closure of\n%s", a, d.String()))
	}
	return strings.Join(parts, "\n")
}
