package downset

import (
	"sort"
	"strings"

	"github.com/katalvlaran/popcontrol/ideal"
)

// DownSet is a finite antichain of Ideals, kept minimized: after every
// public mutation no two members are comparable (spec.md §8 invariant 1).
// All members share the same dimension.
type DownSet struct {
	dim    int
	ideals map[string]ideal.Ideal
}

// New returns the empty DownSet of the given dimension.
func New(dim int) *DownSet {
	return &DownSet{dim: dim, ideals: make(map[string]ideal.Ideal)}
}

// FromIdeals builds a DownSet from a (possibly non-minimal) slice of
// Ideals, all of which must share the same dimension. The result is
// minimized before being returned.
func FromIdeals(ideals []ideal.Ideal) *DownSet {
	dim := 0
	if len(ideals) > 0 {
		dim = ideals[0].Dim()
	}
	d := New(dim)
	for _, id := range ideals {
		d.Insert(id)
	}
	d.Minimize()
	return d
}

func (d *DownSet) requireDim(id ideal.Ideal) {
	if d.dim != 0 && id.Dim() != d.dim {
		panic(ErrDimensionMismatch)
	}
	if d.dim == 0 {
		d.dim = id.Dim()
	}
}

// Dim returns the ambient dimension. Zero for a DownSet that has never
// received an Ideal.
func (d *DownSet) Dim() int { return d.dim }

// IsEmpty reports whether the DownSet has no members (hence denotes the
// empty set, not just the zero vector).
func (d *DownSet) IsEmpty() bool { return len(d.ideals) == 0 }

// Contains reports whether x lies in the downward closure: x ⊑ Ij for
// some member Ij (spec.md §3 invariant (iii)).
func (d *DownSet) Contains(x ideal.Ideal) bool {
	for _, id := range d.ideals {
		if ideal.LessEqual(x, id) {
			return true
		}
	}
	return false
}

// IsContainedIn reports whether every member of d is contained in other's
// downward closure.
func (d *DownSet) IsContainedIn(other *DownSet) bool {
	for _, id := range d.ideals {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Equal reports mutual containment (spec.md §3/§8: equality is set
// equality of the downward closure, not of the representation).
func Equal(a, b *DownSet) bool {
	return a.IsContainedIn(b) && b.IsContainedIn(a)
}

// Insert adds id to the set if it is not already present (by exact
// representation — callers call Minimize separately to drop covered
// members). Returns true if the set changed.
func (d *DownSet) Insert(id ideal.Ideal) bool {
	d.requireDim(id)
	key := id.Key()
	if _, ok := d.ideals[key]; ok {
		return false
	}
	d.ideals[key] = id
	return true
}

// Ideals returns the members of the antichain in a deterministic
// (canonical textual) order, per spec.md §9's determinism requirement.
func (d *DownSet) Ideals() []ideal.Ideal {
	out := make([]ideal.Ideal, 0, len(d.ideals))
	for _, id := range d.ideals {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Minimize removes every member that is strictly below another member,
// restoring the antichain invariant. Returns true if anything was
// removed. Idempotent: a second call on an already-minimal set is a
// no-op (spec.md §8 invariant 8).
func (d *DownSet) Minimize() bool {
	all := d.Ideals()
	var toRemove []string
	for _, x := range all {
		for _, y := range all {
			if x.Key() == y.Key() {
				continue
			}
			if ideal.LessEqual(x, y) {
				// x's downward closure is a subset of y's: x is redundant.
				toRemove = append(toRemove, x.Key())
				break
			}
		}
	}
	changed := false
	for _, key := range toRemove {
		if _, ok := d.ideals[key]; ok {
			delete(d.ideals, key)
			changed = true
		}
	}
	return changed
}

// RestrictTo computes the intersection of d's downward closure with
// other's: every member of d not already covered by other is replaced by
// its intersection with each member of other (spec.md §4.3). Returns
// true if d changed. RestrictTo(empty) empties d.
func (d *DownSet) RestrictTo(other *DownSet) bool {
	changed := false
	next := New(d.dim)
	for _, id := range d.Ideals() {
		if other.Contains(id) {
			next.Insert(id)
			continue
		}
		changed = true
		for _, o := range other.Ideals() {
			next.Insert(ideal.Intersection(id, o))
		}
	}
	if changed {
		next.Minimize()
		d.ideals = next.ideals
		if d.dim == 0 {
			d.dim = next.dim
		}
	}
	return changed
}

// RoundDown replaces every member whose finite coordinates exceed k with
// its RoundDown(k), then re-minimizes implicitly by relying on the
// caller to call Minimize afterwards if needed (mirrors downset.rs's
// round_down, which re-inserts without immediately minimizing).
func (d *DownSet) RoundDown(k int) {
	for key, id := range d.ideals {
		if id.SomeFiniteCoordinateIsLargerThan(k) {
			delete(d.ideals, key)
			rounded := id.RoundDown(k)
			d.ideals[rounded.Key()] = rounded
		}
	}
}

// String renders one ideal per line, sorted canonically, matching the
// teacher's Display-via-sorted-strings convention (downset.rs Display).
func (d *DownSet) String() string {
	if d.IsEmpty() {
		return "empty downward-closed set"
	}
	var b strings.Builder
	for _, id := range d.Ideals() {
		b.WriteString(id.String())
		b.WriteByte('\n')
	}
	return b.String()
}
