// Package render prints search trees for debugging.
package render

import (
	"fmt"

	"github.com/disiqueira/gotree"

	"go.lepak.sg/treesearch/search"
)

// Tree renders root and those of nodes that descend from it as a text
// tree, one node per line. Parents must come before their children in
// nodes, as they do in solve.Result.Nodes; other nodes are skipped.
func Tree[S, A any](root *search.Node[S, A], nodes []*search.Node[S, A]) string {
	t := gotree.New(Label(root))
	added := map[*search.Node[S, A]]gotree.Tree{root: t}

	for _, n := range nodes {
		if n == root {
			continue
		}
		parent, ok := added[n.Parent()]
		if !ok {
			continue
		}
		added[n] = parent.Add(Label(n))
	}
	return t.Print()
}

// Label is the text for a single node: the state for the root, and
// "action: state (g=cost)" for every other node.
func Label[S, A any](n *search.Node[S, A]) string {
	a, ok := n.Action()
	if !ok {
		return n.String()
	}
	return fmt.Sprintf("%v: %s (g=%g)", a, n.String(), n.PathCost())
}
