package semigroup

import (
	"context"
	"runtime"
	"sort"

	"github.com/katalvlaran/popcontrol/downset"
	"github.com/katalvlaran/popcontrol/flowmat"
	"golang.org/x/sync/errgroup"
)

// FlowSemigroup is a minimal antichain of flows, closed under product and
// iteration modulo ⊑ (spec.md §4.5). The zero value is not usable; build
// one with Compute.
type FlowSemigroup struct {
	flows map[string]flowmat.Flow
}

// Compute saturates seed under product and iteration with bound k,
// following spec.md §4.5's two-queue worklist discipline: mult_queue
// holds pending products, iter_queue holds flows pending iteration. A
// flow popped from either queue that is already covered by the
// accumulator is dropped without expansion (the early-exit spec.md §9
// requires to bound the exponential enumeration). Every flow popped from
// mult_queue is unconditionally forwarded to iter_queue too — mirroring
// original_source/src/semigroup.rs's close_by_product_and_iteration,
// which calls flow.iteration() on every popped flow regardless of
// idempotence (Iteration first drives the flow to its idempotent power
// internally, so this is always safe, just sometimes a no-op once admit()
// sees the result is already a member).
//
// Grounded on close_by_product_and_iteration for the overall "pop, skip
// if covered, expand, enqueue new admissions" shape; generalized to the
// explicit K-bounded two-queue split spec.md §4.5 prescribes (the
// original has a single undifferentiated queue and no K parameter).
func Compute(seed []flowmat.Flow, k int) *FlowSemigroup {
	sg := &FlowSemigroup{flows: make(map[string]flowmat.Flow)}
	multQueue := make([]flowmat.Flow, 0, len(seed))
	for _, f := range seed {
		if sg.admit(f) {
			multQueue = append(multQueue, f)
		}
	}
	var iterQueue []flowmat.Flow

	for len(multQueue) > 0 || len(iterQueue) > 0 {
		for len(multQueue) > 0 {
			f := multQueue[0]
			multQueue = multQueue[1:]
			if sg.covered(f) {
				continue
			}
			iterQueue = append(iterQueue, f)
			for _, g := range sg.productsWith(f, k) {
				if sg.admit(g) {
					multQueue = append(multQueue, g)
				}
			}
		}
		for len(iterQueue) > 0 {
			f := iterQueue[0]
			iterQueue = iterQueue[1:]
			if sg.covered(f) {
				continue
			}
			g := flowmat.Iteration(f)
			if sg.admit(g) {
				multQueue = append(multQueue, g)
			}
		}
		sg.minimize()
	}
	sg.minimize()
	return sg
}

// covered reports whether f has been superseded by a distinct member
// since being enqueued — either minimize() dropped it from the
// accumulator, or some other flow strictly dominates it. Self-comparison
// is excluded: every admitted flow is trivially ⊑ itself, and a queue
// entry must still be expanded (products/iteration computed against the
// rest of T) even though it already sits in T.
func (sg *FlowSemigroup) covered(f flowmat.Flow) bool {
	key := f.Key()
	if _, ok := sg.flows[key]; !ok {
		return true
	}
	for gk, g := range sg.flows {
		if gk == key {
			continue
		}
		if flowmat.LessEqual(f, g) {
			return true
		}
	}
	return false
}

// admit inserts f if it is not already present by exact key. Returns
// whether the set changed.
func (sg *FlowSemigroup) admit(f flowmat.Flow) bool {
	key := f.Key()
	if _, ok := sg.flows[key]; ok {
		return false
	}
	sg.flows[key] = f
	return true
}

// minimize removes every flow strictly dominated by another, restoring
// the antichain invariant (spec.md §4.5: "T is periodically minimized").
func (sg *FlowSemigroup) minimize() {
	all := sg.Flows()
	var drop []string
	for _, f := range all {
		for _, g := range all {
			if f.Key() == g.Key() {
				continue
			}
			if flowmat.LessEqual(f, g) {
				drop = append(drop, f.Key())
				break
			}
		}
	}
	for _, key := range drop {
		delete(sg.flows, key)
	}
}

// productsWith computes {f·g : g∈T} ∪ {g·f : g∈T} (spec.md §5 item 1),
// evaluated with a bounded worker pool since each product is a pure
// function of its two operands and results are only merged by the
// caller, never mutated concurrently.
func (sg *FlowSemigroup) productsWith(f flowmat.Flow, k int) []flowmat.Flow {
	others := sg.Flows()
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(others) {
		workers = len(others)
	}
	if workers <= 1 || len(others) == 0 {
		var out []flowmat.Flow
		for _, g := range others {
			out = append(out, flowmat.Product(f, g, k)...)
			out = append(out, flowmat.Product(g, f, k)...)
		}
		return out
	}

	results := make([][]flowmat.Flow, len(others))
	g, _ := errgroup.WithContext(context.Background())
	chunk := (len(others) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(others) {
			break
		}
		if end > len(others) {
			end = len(others)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				var local []flowmat.Flow
				local = append(local, flowmat.Product(f, others[i], k)...)
				local = append(local, flowmat.Product(others[i], f, k)...)
				results[i] = local
			}
			return nil
		})
	}
	_ = g.Wait()

	var out []flowmat.Flow
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// Flows returns the members of the antichain in a deterministic order.
func (sg *FlowSemigroup) Flows() []flowmat.Flow {
	out := make([]flowmat.Flow, 0, len(sg.flows))
	for _, f := range sg.flows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// GetPathProblemSolution returns {F.PreImage(target) : F∈T} as a DownSet:
// every configuration from which some word witnessed by a flow in T is
// guaranteed to reach target (spec.md §4.5).
func (sg *FlowSemigroup) GetPathProblemSolution(target []int) *downset.DownSet {
	var result *downset.DownSet
	for _, f := range sg.Flows() {
		id := f.PreImage(target)
		if result == nil {
			result = downset.New(id.Dim())
		}
		result.Insert(id)
	}
	if result == nil {
		return downset.New(0)
	}
	result.Minimize()
	return result
}
