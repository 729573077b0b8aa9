package memo

import (
	"strings"
	"sync"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/ideal"
)

var (
	cartesianMu    sync.Mutex
	cartesianCache = make(map[string][]ideal.Ideal)
)

// CoefCartesianProduct expands the Cartesian product of per-axis
// admissible coefficients into the set of Ideals it denotes, caching the
// result by the textual shape of possible (spec.md §4.3's
// POSSIBLE_COEFS_CACHE / compute_possible_coefs).
func CoefCartesianProduct(possible [][]coef.Coef) []ideal.Ideal {
	key := cartesianKey(possible)

	cartesianMu.Lock()
	if cached, ok := cartesianCache[key]; ok {
		cartesianMu.Unlock()
		return cached
	}
	cartesianMu.Unlock()

	result := computeCartesianProduct(possible)

	cartesianMu.Lock()
	cartesianCache[key] = result
	cartesianMu.Unlock()

	return result
}

func cartesianKey(possible [][]coef.Coef) string {
	var b strings.Builder
	for i, axis := range possible {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, c := range axis {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.String())
		}
	}
	return b.String()
}

func computeCartesianProduct(possible [][]coef.Coef) []ideal.Ideal {
	dim := len(possible)
	if dim == 0 {
		return nil
	}
	var out []ideal.Ideal
	cur := make([]coef.Coef, dim)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == dim {
			out = append(out, ideal.FromSlice(cur))
			return
		}
		for _, c := range possible[axis] {
			cur[axis] = c
			rec(axis + 1)
		}
	}
	rec(0)
	return out
}
