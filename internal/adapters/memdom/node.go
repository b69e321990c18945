// Package memdom is an in-memory rendering of the host's DOM surface:
// enough of an element tree and event model to drive the click router
// the way the real host does. It backs the workspace simulator and the
// engine's tests.
package memdom

import "tabnav/internal/ports"

// Node implements ports.Element.
type Node struct {
	classes  map[string]bool
	attrs    map[string]string
	internal map[string]any
	text     string
	parent   *Node
	children []*Node
}

// NewNode creates a detached node carrying the given classes.
func NewNode(classes ...string) *Node {
	n := &Node{
		classes:  make(map[string]bool, len(classes)),
		attrs:    map[string]string{},
		internal: map[string]any{},
	}
	for _, c := range classes {
		n.classes[c] = true
	}
	return n
}

// AddClass adds a class and returns the node for chaining.
func (n *Node) AddClass(class string) *Node {
	n.classes[class] = true
	return n
}

// SetAttr sets a DOM attribute.
func (n *Node) SetAttr(name, value string) *Node {
	n.attrs[name] = value
	return n
}

// SetInternal attaches a host-internal property to the node.
func (n *Node) SetInternal(key string, value any) *Node {
	n.internal[key] = value
	return n
}

// SetText sets the node's own visible text.
func (n *Node) SetText(text string) *Node {
	n.text = text
	return n
}

// Append adds children to the node and returns it.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) HasClass(name string) bool { return n.classes[name] }

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) Internal(key string) (any, bool) {
	v, ok := n.internal[key]
	return v, ok
}

// Text returns the node's own text, or the concatenated text of its
// descendants when it has none.
func (n *Node) Text() string {
	if n.text != "" {
		return n.text
	}
	out := ""
	for _, c := range n.children {
		out += c.Text()
	}
	return out
}

func (n *Node) Parent() ports.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []ports.Element {
	out := make([]ports.Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}
