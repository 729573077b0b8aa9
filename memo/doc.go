// Package memo implements the process-wide, value-keyed memoization
// caches described in spec.md §5 and §9: one for integer-partition /
// transport enumeration, one for Cartesian-product expansions of
// admissible coefficient profiles — plus a third for the per-axis
// successor distributions of Choices. All are purely performance-oriented —
// every result is reproducible without the cache — and are guarded by a
// single mutex per cache, matching the teacher's muVert/muEdgeAdj
// locking discipline (core/types.go) applied to a simpler, single-lock
// shape here since caches have no internal substructure to protect
// separately.
package memo
