package memo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/ideal"
)

var (
	choicesMu    sync.Mutex
	choicesCache = make(map[string][]ideal.Ideal)
)

// Choices enumerates every way a single axis's coefficient value can be
// distributed over its successors, as a dim-dimensional Ideal with all
// mass on those successors (spec.md §4.3's get_choices, used inside
// get_image / is_safe_with_roundup):
//
//   - value == 0: the single all-zero Ideal.
//   - value == Omega: the single Ideal with Omega on every successor.
//   - value finite v: one Ideal per length-len(successors) transport of v.
func Choices(dim int, value coef.Coef, successors []int) []ideal.Ideal {
	key := choicesKey(dim, value, successors)

	choicesMu.Lock()
	if cached, ok := choicesCache[key]; ok {
		choicesMu.Unlock()
		return cached
	}
	choicesMu.Unlock()

	result := computeChoices(dim, value, successors)

	choicesMu.Lock()
	choicesCache[key] = result
	choicesMu.Unlock()

	return result
}

func choicesKey(dim int, value coef.Coef, successors []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%s/", dim, value.String())
	for i, s := range successors {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	return b.String()
}

func computeChoices(dim int, value coef.Coef, successors []int) []ideal.Ideal {
	switch {
	case value == coef.Zero:
		return []ideal.Ideal{ideal.New(dim, coef.Zero)}
	case value.IsOmega():
		base := ideal.New(dim, coef.Zero)
		for _, succ := range successors {
			base = base.Set(succ, coef.Omega)
		}
		return []ideal.Ideal{base}
	default:
		transports := Transports(value.Int(), len(successors))
		out := make([]ideal.Ideal, 0, len(transports))
		for _, transport := range transports {
			id := ideal.New(dim, coef.Zero)
			for i, succ := range successors {
				id = id.Set(succ, coef.Value(transport[i]))
			}
			out = append(out, id)
		}
		return out
	}
}
