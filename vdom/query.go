package vdom

import (
	"sort"
	"strings"
)

// FindByTestAttr returns every node in the tree whose data-test attribute
// equals val, in document order.
func FindByTestAttr(root *VNode, val string) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) {
		if v, ok := n.Attr(TestAttr); ok && v == val {
			found = append(found, n)
		}
	})
	return found
}

// Walk visits root and its descendants depth first.
func Walk(root *VNode, visit func(*VNode)) {
	if root == nil {
		return
	}
	visit(root)
	for _, c := range root.Children {
		Walk(c, visit)
	}
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *VNode) string {
	var b strings.Builder
	Walk(n, func(v *VNode) { b.WriteString(v.Content) })
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
