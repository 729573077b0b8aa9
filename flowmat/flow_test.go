package flowmat

import (
	"testing"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/digraph"
	"github.com/katalvlaran/popcontrol/ideal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(vals ...int) ideal.Ideal {
	cs := make([]coef.Coef, len(vals))
	for i, x := range vals {
		if x < 0 {
			cs[i] = coef.Omega
		} else {
			cs[i] = coef.Value(x)
		}
	}
	return ideal.FromSlice(cs)
}

// TestFromDomainAndEdges mirrors original_source/src/flow.rs's
// from_domain_and_edges test: a chain 0->1->2 with domain (1,2,3) forces
// a single deterministic flow (out-degree at most 1 everywhere; state 2
// has no successor, so its row stays zero).
func TestFromDomainAndEdges(t *testing.T) {
	g := digraph.New(3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	flows := FromDomainAndEdges(vec(1, 2, 3), g)
	require.Len(t, flows, 1)
	f := flows[0]
	assert.Equal(t, coef.Value(1), f.At(0, 1))
	assert.Equal(t, coef.Value(2), f.At(1, 2))
	assert.Equal(t, coef.Zero, f.At(0, 0))
	assert.Equal(t, coef.Zero, f.At(2, 2))
}

func TestFromDomainAndEdgesBranching(t *testing.T) {
	g := digraph.New(3, []digraph.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
	flows := FromDomainAndEdges(vec(2, 0, 0), g)
	// Partitions(2,2) has 3 members: (2,0),(1,1),(0,2).
	assert.Len(t, flows, 3)
}

func TestFromDomainAndEdgesOmegaBroadcast(t *testing.T) {
	g := digraph.New(2, []digraph.Edge{{From: 0, To: 1}})
	flows := FromDomainAndEdges(vec(-1, 0), g)
	require.Len(t, flows, 1)
	assert.True(t, flows[0].At(0, 1).IsOmega())
}

func TestOmegaOnlyProduct(t *testing.T) {
	a := New(3)
	a.entries[0*3+1] = coef.Omega
	b := New(3)
	b.entries[1*3+2] = coef.Omega
	p := OmegaOnlyProduct(a, b)
	assert.True(t, p.At(0, 2).IsOmega())
	assert.Equal(t, coef.Zero, p.At(0, 0))
}

func TestFiniteAwareProductDistributesBudget(t *testing.T) {
	// a: 0 -> 1 carries 2 units; b: 1 -> {0,2} can each carry up to 2.
	a := New(3)
	a.entries[0*3+1] = coef.Value(2)
	b := New(3)
	b.entries[1*3+0] = coef.Value(2)
	b.entries[1*3+2] = coef.Value(2)

	results := FiniteAwareProduct(a, b, 3)
	require.NotEmpty(t, results)
	for _, f := range results {
		// no more than the 2 units arriving at 1 from 0 can be re-routed
		// onward (a transport may also leave part of them unplaced).
		assert.LessOrEqual(t, f.At(0, 0).IntOr(3)+f.At(0, 2).IntOr(3), 2)
	}
}

func TestProductDispatchesByK(t *testing.T) {
	a := New(2)
	a.entries[0*2+1] = coef.Value(1)
	b := New(2)
	b.entries[1*2+0] = coef.Value(1)

	low := Product(a, b, 1)
	require.Len(t, low, 1)
	assert.Equal(t, coef.Zero, low[0].At(0, 0)) // finite entries ignored at K<=1

	high := Product(a, b, 2)
	require.NotEmpty(t, high)
}

func TestPreImage(t *testing.T) {
	f := New(2)
	f.entries[0*2+1] = coef.Value(3)
	f.entries[1*2+1] = coef.Omega
	got := f.PreImage([]int{1})
	assert.Equal(t, coef.Value(3), got.Get(0))
	assert.True(t, got.Get(1).IsOmega())
}

func TestSharpPropagatesOmega(t *testing.T) {
	f := New(3)
	f.entries[0*3+1] = coef.Omega // i=0 -> s0=1
	f.entries[1*3+2] = coef.Value(1)
	f.entries[2*3+2] = coef.Omega // t0=2 -> j=2
	sharp := Sharp(f)
	assert.True(t, sharp.At(0, 2).IsOmega())
}

// TestSharpUnionsEveryFinitePositiveWitness regression-tests Sharp against
// an F with two distinct finite-positive witness pairs: (s0,t0)=(2,1) via
// F[2][1]=1 (with F[0][2]=ω, F[1][3]=ω), and (s0,t0)=(3,0) via F[3][0]=1
// (with F[1][3]=ω, F[2][3]=ω, F[0][2]=ω). A scan that stops at the first
// finite-positive pair only sets F^♯[0][3]=ω and silently leaves
// F^♯[1][2]/F^♯[2][2] at Zero; both witnesses must contribute.
func TestSharpUnionsEveryFinitePositiveWitness(t *testing.T) {
	f := New(4)
	f.entries[2*4+1] = coef.Value(1)
	f.entries[3*4+0] = coef.Value(1)
	f.entries[0*4+2] = coef.Omega
	f.entries[1*4+3] = coef.Omega
	f.entries[2*4+3] = coef.Omega

	sharp := Sharp(f)
	assert.True(t, sharp.At(0, 3).IsOmega(), "witness (2,1) should set F^♯[0][3]")
	assert.True(t, sharp.At(1, 2).IsOmega(), "witness (3,0) should set F^♯[1][2]")
	assert.True(t, sharp.At(2, 2).IsOmega(), "witness (3,0) should set F^♯[2][2]")
}

func TestIdempotentClosureTerminates(t *testing.T) {
	f := New(2)
	f.entries[0*2+1] = coef.Omega
	f.entries[1*2+0] = coef.Omega
	closure := IdempotentClosure(f)
	squared := TropicalProduct(closure, closure)
	assert.True(t, Equal(closure, squared))
}

// TestIteration mirrors original_source/src/semigroup.rs's
// test_flow_semigroup_compute vector: iterating F=[[ω,1],[0,ω]] yields
// [[ω,ω],[0,ω]] (a single finite edge traversed arbitrarily often
// transports ω between its ω-reachable ends).
func TestIteration(t *testing.T) {
	f := New(2)
	f.entries[0*2+0] = coef.Omega
	f.entries[0*2+1] = coef.Value(1)
	f.entries[1*2+0] = coef.Zero
	f.entries[1*2+1] = coef.Omega

	require.True(t, Equal(f, TropicalProduct(f, f)), "fixture should already be tropical-idempotent")

	got := Iteration(f)
	want := New(2)
	want.entries[0*2+0] = coef.Omega
	want.entries[0*2+1] = coef.Omega
	want.entries[1*2+0] = coef.Zero
	want.entries[1*2+1] = coef.Omega
	assert.True(t, Equal(got, want))
}
