package generate

// unionFind is a disjoint-set structure over dense cell indices, used by
// Kruskal to track which cells are already connected. It lives only for
// the duration of one Kruskal run.
type unionFind struct {
	parent []int
	rank   []int
}

// newUnionFind creates n singleton sets with parent[i] = i.
// Complexity: O(n).
func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

// find returns the root of x. Iterative with path halving: every visited
// node is pointed at its grandparent, flattening future lookups to O(α(n))
// amortized without recursion.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets containing a and b by rank. Returns true when the
// two sets were disjoint and have been merged, false when a and b were
// already connected.
func (u *unionFind) union(a, b int) bool {
	rootA := u.find(a)
	rootB := u.find(b)
	if rootA == rootB {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if u.rank[rootA] < u.rank[rootB] {
		u.parent[rootA] = rootB
	} else {
		u.parent[rootB] = rootA
		if u.rank[rootA] == u.rank[rootB] {
			u.rank[rootA]++
		}
	}

	return true
}
