package trie

import (
	"cmp"
	"iter"
	"sort"
)

// noChildren is returned by locate when a node has no children at all, as
// distinct from len(children), which means "insert at the end".
const noChildren = -1

// node is a single vertex of a Trie. It holds one rune, whether the path from
// the root down to it spells a stored word, and its children sorted by rune
// with no rune appearing twice.
type node struct {
	char     rune
	terminal bool
	children []*node
}

func newNode(char rune, terminal bool) *node {
	return &node{char: char, terminal: terminal}
}

// compare orders nodes by rune ordinal only.
func (n *node) compare(other *node) int {
	return cmp.Compare(n.char, other.char)
}

// locate returns the index at which a child for r belongs. If a child for r
// already exists its own index is returned.
func (n *node) locate(r rune) int {
	if len(n.children) == 0 {
		return noChildren
	}
	return sort.Search(len(n.children), func(i int) bool {
		return n.children[i].char >= r
	})
}

// addChild inserts c in rune order. If a child with the same rune is already
// present nothing changes, including any terminal flags below it.
func (n *node) addChild(c *node) {
	i := n.locate(c.char)
	switch {
	case i == noChildren, i == len(n.children):
		n.children = append(n.children, c)
	case n.children[i].compare(c) != 0:
		n.children = append(n.children, nil)
		copy(n.children[i+1:], n.children[i:])
		n.children[i] = c
	}
}

// child returns the child holding r, if any.
func (n *node) child(r rune) (*node, bool) {
	i := n.locate(r)
	if i == noChildren || i == len(n.children) || n.children[i].char != r {
		return nil, false
	}
	return n.children[i], true
}

// removeChild unmarks the child holding r as the end of a word. The child and
// its subtree stay in place.
func (n *node) removeChild(r rune) {
	if c, ok := n.child(r); ok {
		c.terminal = false
	}
}

// all yields the children in ascending rune order.
func (n *node) all() iter.Seq[*node] {
	return func(yield func(*node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// hasWord reports whether n or any node below it is terminal.
func (n *node) hasWord() bool {
	if n.terminal {
		return true
	}
	for c := range n.all() {
		if c.hasWord() {
			return true
		}
	}
	return false
}
