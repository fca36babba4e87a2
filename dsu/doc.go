// Package dsu provides an arena-backed disjoint-set forest (union–find)
// over a dense integer universe [0, n).
//
// What:
//
//   - Forest tracks connectivity classes over a fixed universe of n elements.
//   - Find(i) returns the canonical root of i's class.
//   - TryMerge(a, b) joins two classes, reporting whether a union happened —
//     a false return means the pair was already connected, i.e. linking them
//     would close a cycle.
//
// Why:
//
//   - Kruskal-style spanning-tree construction: accept an edge exactly when
//     TryMerge returns true.
//   - Connected-component bookkeeping over any index-addressable element set.
//
// The arena layout (one parent slot per element, roots marked by a sentinel)
// avoids per-node allocation and reference cycles entirely; the whole forest
// is two int slices.
//
// Complexity:
//
//   - New:      O(n) time and memory.
//   - Find:     O(α(n)) amortized (path halving).
//   - TryMerge: O(α(n)) amortized (union by rank).
//
// Concurrency: a Forest is not safe for concurrent mutation; it is meant to
// be exclusively owned by a single construction pass and discarded after.
package dsu
