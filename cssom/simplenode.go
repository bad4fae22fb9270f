package cssom

// SimpleNode is a minimal, concrete StyleNode implementation for embedders
// (and tests) that don't already have their own host tree node type to
// adapt, and for table-driven query tests that need a throwaway node
// without standing up a full tree. It carries exactly the fields spec
// §4.4 says the query engine needs: tag/id/classes/attributes/pseudo-
// element plus the three scope tags.
type SimpleNode struct {
	Tag           string
	IDAttr        string
	ClassList     []ScopedClass
	Attrs         map[string]string
	PseudoEl      PseudoElementKind
	Scope         uint64
	ExtraScope    uint64
	HostScope     uint64
	precedingSibl StyleNode
}

// NewSimpleNode builds a SimpleNode with a tag name and a set of unscoped
// classes, the common case for a test fixture or an embedder with no
// scoped-component styling.
func NewSimpleNode(tag string, classes ...string) *SimpleNode {
	n := &SimpleNode{Tag: tag}
	for _, c := range classes {
		n.ClassList = append(n.ClassList, ScopedClass{Name: c})
	}
	return n
}

// WithID, WithScope, WithAttr and WithPrecedingSibling are small chained
// setters so a test can build a fixture node in one expression.
func (n *SimpleNode) WithID(id string) *SimpleNode { n.IDAttr = id; return n }

func (n *SimpleNode) WithScope(style, extra, host uint64) *SimpleNode {
	n.Scope, n.ExtraScope, n.HostScope = style, extra, host
	return n
}

func (n *SimpleNode) WithScopedClass(name string, scope uint64) *SimpleNode {
	n.ClassList = append(n.ClassList, ScopedClass{Name: name, Scope: scope})
	return n
}

func (n *SimpleNode) WithAttr(name, value string) *SimpleNode {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

func (n *SimpleNode) WithPrecedingSibling(sib StyleNode) *SimpleNode {
	n.precedingSibl = sib
	return n
}

func (n *SimpleNode) TagName() string               { return n.Tag }
func (n *SimpleNode) ID() string                     { return n.IDAttr }
func (n *SimpleNode) Classes() []ScopedClass         { return n.ClassList }
func (n *SimpleNode) PseudoElement() PseudoElementKind { return n.PseudoEl }
func (n *SimpleNode) StyleScope() uint64             { return n.Scope }
func (n *SimpleNode) ExtraStyleScope() uint64        { return n.ExtraScope }
func (n *SimpleNode) HostStyleScope() uint64         { return n.HostScope }

func (n *SimpleNode) AttributeValue(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// PrecedingSibling implements SiblingStyleNode for NextSibling/
// SubsequentSibling relation matching.
func (n *SimpleNode) PrecedingSibling() (StyleNode, bool) {
	return n.precedingSibl, n.precedingSibl != nil
}

var _ StyleNode = (*SimpleNode)(nil)
var _ SiblingStyleNode = (*SimpleNode)(nil)
