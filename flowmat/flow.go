package flowmat

import (
	"sort"
	"strings"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/digraph"
	"github.com/katalvlaran/popcontrol/ideal"
	"github.com/katalvlaran/popcontrol/memo"
)

// Flow is a square n×n matrix of coefficients: F[i][j] bounds how many
// tokens can travel from i to j under the word F represents. Entries are
// stored row-major. Flow is used by value; every transformation returns a
// new Flow rather than mutating the receiver.
type Flow struct {
	dim     int
	entries []coef.Coef
}

// New returns the all-Zero Flow of the given dimension.
func New(dim int) Flow {
	entries := make([]coef.Coef, dim*dim)
	for i := range entries {
		entries[i] = coef.Zero
	}
	return Flow{dim: dim, entries: entries}
}

// FromEntries builds a Flow directly from a row-major dim*dim slice of
// coefficients, mirroring original_source/src/flow.rs's
// Flow::from_entries (used there, as here, mainly to state fixtures in
// tests without routing through FromDomainAndEdges).
func FromEntries(dim int, entries []coef.Coef) Flow {
	if len(entries) != dim*dim {
		panic(ErrDimensionMismatch)
	}
	out := make([]coef.Coef, len(entries))
	copy(out, entries)
	return Flow{dim: dim, entries: out}
}

// Dim returns the ambient state count.
func (f Flow) Dim() int { return f.dim }

// At returns F[i][j].
func (f Flow) At(i, j int) coef.Coef { return f.entries[i*f.dim+j] }

func sameDim(a, b Flow) {
	if a.dim != b.dim {
		panic(ErrDimensionMismatch)
	}
}

// LessEqual is the componentwise order F ⊑ G.
func LessEqual(a, b Flow) bool {
	sameDim(a, b)
	for i, c := range a.entries {
		if !c.LessEqual(b.entries[i]) {
			return false
		}
	}
	return true
}

// Equal reports componentwise equality.
func Equal(a, b Flow) bool {
	sameDim(a, b)
	for i, c := range a.entries {
		if c != b.entries[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying F's entries, usable as a
// set/map key (mirrors ideal.Ideal.Key, needed because Flow embeds a
// slice and is therefore not comparable with ==).
func (f Flow) Key() string {
	parts := make([]string, len(f.entries))
	for i, c := range f.entries {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// PreImage computes component i = Σ_{j∈target} F[i][j] (spec.md §4.4): the
// mass guaranteed deliverable into target from i by this flow.
func (f Flow) PreImage(target []int) ideal.Ideal {
	out := make([]coef.Coef, f.dim)
	for i := 0; i < f.dim; i++ {
		row := make([]coef.Coef, len(target))
		for k, j := range target {
			row[k] = f.At(i, j)
		}
		out[i] = coef.Sum(row)
	}
	return ideal.FromSlice(out)
}

// FromDomainAndEdges enumerates every deterministic transport of the
// counts described by dom along g's edges (spec.md §4.4): for source i,
// a Zero count yields an all-zero row; an Omega count broadcasts Omega to
// every successor; a finite count v is distributed as one of the
// length-|succ(i)| compositions of v. The Cartesian product over sources
// yields the flow set. Panics (via digraph.New) if an edge mentions an
// index >= dom's dimension — that check already happened at graph
// construction time.
func FromDomainAndEdges(dom ideal.Ideal, g *digraph.Graph) []Flow {
	dim := dom.Dim()
	if dim != g.Dim() {
		panic(ErrDimensionMismatch)
	}

	rowChoices := make([][][]coef.Coef, dim)
	for i := 0; i < dim; i++ {
		succ := g.Successors(i)
		rowChoices[i] = rowsFor(dom.Get(i), succ)
	}

	results := make([]Flow, 0)
	acc := make([]coef.Coef, dim*dim)
	var rec func(i int)
	rec = func(i int) {
		if i == dim {
			entries := make([]coef.Coef, len(acc))
			copy(entries, acc)
			results = append(results, Flow{dim: dim, entries: entries})
			return
		}
		succ := g.Successors(i)
		for _, row := range rowChoices[i] {
			for k, j := range succ {
				acc[i*dim+j] = row[k]
			}
			rec(i + 1)
		}
		for _, j := range succ {
			acc[i*dim+j] = coef.Zero
		}
	}
	rec(0)
	return results
}

// rowsFor enumerates the possible rows at a source whose domain count is
// v, spread over the given successors.
func rowsFor(v coef.Coef, succ []int) [][]coef.Coef {
	switch {
	case len(succ) == 0 || v == coef.Zero:
		return [][]coef.Coef{make([]coef.Coef, len(succ))}
	case v.IsOmega():
		row := make([]coef.Coef, len(succ))
		for i := range row {
			row[i] = coef.Omega
		}
		return [][]coef.Coef{row}
	default:
		transports := memo.Transports(v.Int(), len(succ))
		rows := make([][]coef.Coef, len(transports))
		for t, transport := range transports {
			row := make([]coef.Coef, len(succ))
			for i, c := range transport {
				row[i] = coef.Value(c)
			}
			rows[t] = row
		}
		return rows
	}
}

// String renders one row per line, matching the teacher's row-major
// matrix Display convention.
func (f Flow) String() string {
	var b strings.Builder
	for i := 0; i < f.dim; i++ {
		parts := make([]string, f.dim)
		for j := 0; j < f.dim; j++ {
			parts[j] = f.At(i, j).String()
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// sortFlows orders flows by Key for deterministic output.
func sortFlows(flows []Flow) []Flow {
	sort.Slice(flows, func(i, j int) bool { return flows[i].Key() < flows[j].Key() })
	return flows
}
