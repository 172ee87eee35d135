package dom

import (
	"strings"

	"github.com/tsawler/boxtree/style"
)

// NodeType distinguishes element nodes from character data.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

// String returns a string representation of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is a single node of a parsed document.
type Node struct {
	Type       NodeType
	Tag        string // lowercase, elements only
	Attributes map[string]string
	Text       string // text and comment nodes
	Style      style.Cascade

	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element. The tag is lowercased.
func NewElement(tag string, attrs map[string]string) *Node {
	return &Node{
		Type:       ElementNode,
		Tag:        strings.ToLower(tag),
		Attributes: attrs,
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// AppendChild adds child as the last child of n and returns child.
func (n *Node) AppendChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// IsElement reports whether n is an element, optionally one of tags.
func (n *Node) IsElement(tags ...string) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if n.Tag == tag {
			return true
		}
	}
	return false
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// ElementChildren returns the direct element children of n in source order.
// When tags are given only children with one of those tags are returned.
func (n *Node) ElementChildren(tags ...string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.IsElement(tags...) {
			out = append(out, c)
		}
	}
	return out
}

// Closest returns the nearest element, starting with n itself, whose tag is
// one of tags. It returns nil when there is no match.
func (n *Node) Closest(tags ...string) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if len(tags) > 0 && cur.IsElement(tags...) {
			return cur
		}
	}
	return nil
}

// PreviousElementSibling returns the nearest preceding sibling element.
func (n *Node) PreviousElementSibling() *Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	var prev *Node
	for _, c := range n.Parent.Children {
		if c == n {
			return prev
		}
		if c.Type == ElementNode {
			prev = c
		}
	}
	return nil
}

// IndexOfType returns the 0-based position of n among its element siblings
// that share its tag. A detached node has index 0.
func (n *Node) IndexOfType() int {
	if n == nil || n.Parent == nil {
		return 0
	}
	idx := 0
	for _, c := range n.Parent.Children {
		if c == n {
			return idx
		}
		if c.Type == ElementNode && c.Tag == n.Tag {
			idx++
		}
	}
	return 0
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == TextNode {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(sb)
	}
}

// Find returns the first element with the given tag in a depth-first walk
// of n, including n itself.
func (n *Node) Find(tag string) *Node {
	if n == nil {
		return nil
	}
	if n.IsElement(tag) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}
