// Package tree computes deletion closures over the reply parent/child
// relation of a single thread.
package tree

// Node is the minimal projection of a reply needed for traversal.
type Node struct {
	Id     int64
	Parent *int64
}

// Closure returns the root id plus every id transitively reachable from it
// via the parent edge. Input is the full set of replies in the thread; ids
// absent from nodes are still returned if given as root, so deleting a
// leaf works without a lookup. The visited set guards against revisiting
// should the forest invariant ever be relaxed. Order of the returned ids
// is unspecified. O(n) in len(nodes).
func Closure(nodes []Node, root int64) []int64 {
	children := make(map[int64][]int64, len(nodes))
	for _, n := range nodes {
		if n.Parent != nil {
			children[*n.Parent] = append(children[*n.Parent], n.Id)
		}
	}

	visited := make(map[int64]struct{}, len(nodes))
	stack := []int64{root}
	out := make([]int64, 0, len(nodes))
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}
		out = append(out, current)
		stack = append(stack, children[current]...)
	}
	return out
}
