package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpRendersBranchesAndLabels(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	out := Dump(root)
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "child")
	assert.Contains(t, out, "dirty", "a freshly built node's cache starts dirty")
}

func TestDumpUsesLabelerWhenPayloadImplementsIt(t *testing.T) {
	root := NewNode[labeledPayload](labeledPayload{name: "box"})
	out := Dump(root)
	assert.True(t, strings.Contains(out, "box#element"))
}

type labeledPayload struct{ name string }

func (p labeledPayload) TreeLabel() string { return p.name + "#element" }
