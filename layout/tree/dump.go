package tree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Labeler lets a payload type opt into a custom one-line label for Dump;
// types that don't implement it fall back to fmt's default %v rendering.
type Labeler interface {
	TreeLabel() string
}

// Dump renders the subtree rooted at n as an indented tree, in the same
// shape the teacher's persistent/btree tests build with treeprint for
// assertion-failure diagnostics: one branch per node, its cache state
// folded into the node's own label rather than printed as separate leaves.
// Not used by the layout algorithm itself — it exists for test failure
// messages and interactive debugging of a computed layout tree.
func Dump[T any](n *Node[T]) string {
	root := tp.New()
	dumpNode(root, n)
	return root.String()
}

func dumpNode[T any](p tp.Tree, n *Node[T]) {
	if n == nil {
		return
	}
	label := nodeLabel(n)
	if n.ChildCount() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range n.Children() {
		dumpNode(branch, ch)
	}
}

func nodeLabel[T any](n *Node[T]) string {
	var payload string
	if l, ok := any(n.Payload).(Labeler); ok {
		payload = l.TreeLabel()
	} else {
		payload = fmt.Sprintf("%v", n.Payload)
	}
	if n.Unit == nil {
		return payload
	}
	r := n.Unit.result
	state := "clean"
	if n.Unit.dirty {
		state = "dirty"
	}
	return fmt.Sprintf("%s [%s %.1fx%.1f@(%.1f,%.1f)]", payload, state, r.Width, r.Height, r.X, r.Y)
}
