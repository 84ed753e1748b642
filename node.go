// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// nodeID addresses a node in the tree's arena. Parent, child and sibling
// links are ids rather than pointers so the structure has no reference
// cycles.
type nodeID uint32

// nilNode is the zero id. Slot 0 of the arena is never allocated, so a
// zero-valued link means "none".
const nilNode nodeID = 0

// record wraps one stored value so leaf slots are uniform whatever V is.
type record[V any] struct {
	value V
}

// node is a single tree page. Leaves use keys, records and next; internal
// nodes use keys and children, where len(children) == len(keys)+1 and every
// key in children[i] is below keys[i] while every key in children[i+1] is
// at or above it.
type node[K any, V any] struct {
	id       nodeID
	leaf     bool
	keys     []K
	records  []record[V]
	children []nodeID
	parent   nodeID
	next     nodeID
}

func (n *node[K, V]) getId() nodeID {
	return n.id
}

func (n *node[K, V]) isLeaf() bool {
	return n.leaf
}

func (n *node[K, V]) getNumKeys() int {
	return len(n.keys)
}

// allocNode appends a fresh node to the arena. Key and slot storage is
// sized for a full node up front so inserts never grow it.
func (t *Tree[K, V]) allocNode(leaf bool) *node[K, V] {
	n := &node[K, V]{
		id:   nodeID(len(t.nodes)),
		leaf: leaf,
		keys: make([]K, 0, t.order-1),
	}
	if leaf {
		n.records = make([]record[V], 0, t.order-1)
	} else {
		n.children = make([]nodeID, 0, t.order)
	}
	t.nodes = append(t.nodes, n)
	return n
}

// getNode resolves an id; nilNode resolves to nil.
func (t *Tree[K, V]) getNode(id nodeID) *node[K, V] {
	if id == nilNode {
		return nil
	}
	return t.nodes[id]
}

// childIndexOf finds the slot holding child in an internal node.
func (n *node[K, V]) childIndexOf(child nodeID) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	panic("child not linked to its parent")
}
