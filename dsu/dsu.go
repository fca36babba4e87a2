package dsu

// noParent marks a root slot: the element has no parent and is the
// canonical representative of its class.
const noParent = -1

// Forest is a disjoint-set forest over the dense universe [0, Len()).
// The zero value is an empty forest; use New to size one.
//
// Indices outside [0, Len()) are programmer error and panic via the
// underlying slice access.
type Forest struct {
	// parent[i] is the parent of element i, or noParent for a root.
	parent []int
	// rank[i] bounds the height of the tree rooted at i; maintained only
	// for roots, used to keep merge chains shallow.
	rank []int
}

// New returns a Forest of n singleton classes, one per element of [0, n).
// Complexity: O(n).
func New(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}

	return &Forest{
		parent: parent,
		rank:   make([]int, n),
	}
}

// Len reports the size of the universe the forest was built over.
// Complexity: O(1).
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find follows parent links from i to the root of its class and returns
// that root. Path halving along the way shortens future walks; it never
// changes which element is the root.
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(i int) int {
	for f.parent[i] != noParent {
		// Point i at its grandparent when one exists, then step up.
		if gp := f.parent[f.parent[i]]; gp != noParent {
			f.parent[i] = gp
		}
		i = f.parent[i]
	}

	return i
}

// TryMerge joins the classes of a and b. It returns true if the classes
// were distinct and a union was performed, false if a and b were already
// connected (no mutation in that case).
// Complexity: O(α(n)) amortized.
func (f *Forest) TryMerge(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		// Same class; merging would close a cycle.
		return false
	}
	// Attach the shallower tree under the deeper root.
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}

	return true
}
