package ast

// Walk calls fn for n and then for each descendant, depth first. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, sub := range n.Sub {
		Walk(sub, fn)
	}
}

// HasOp reports whether any node in the tree has the given op.
func HasOp(n *Node, op Op) bool {
	found := false
	Walk(n, func(m *Node) bool {
		if m.Op == op {
			found = true
		}
		return !found
	})
	return found
}

// HasNestedStar reports whether a Star appears inside the body of another
// Star, the classic shape behind catastrophic backtracking such as (a*)*.
func HasNestedStar(n *Node) bool {
	return walkCheckRepeating(n, false)
}

func walkCheckRepeating(n *Node, inRepeat bool) bool {
	if n == nil {
		return false
	}
	if n.Op == OpStar && inRepeat {
		return true
	}
	for _, sub := range n.Sub {
		if walkCheckRepeating(sub, inRepeat || n.Op == OpStar) {
			return true
		}
	}
	return false
}
