// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// Destroyable is implemented by values that hold resources which must be
// released when the tree holding them is torn down.
type Destroyable interface {
	Destroy()
}

// DestroyFunc tears down one stored value.
type DestroyFunc[V any] func(V)

// DestroyValue is a DestroyFunc for values implementing Destroyable.
func DestroyValue[V Destroyable](v V) {
	v.Destroy()
}

// BulkFree tears the whole tree down and leaves it empty. When destroy is
// non-nil it is called once for every stored value, in ascending key order;
// a nil destroy leaves the values to the caller. Freeing an empty tree is a
// no-op.
func (t *Tree[K, V]) BulkFree(destroy DestroyFunc[V]) {
	if t.root != nilNode {
		t.destroyNode(t.root, destroy)
	}
	t.resetArena()
}

// destroyNode releases a subtree post-order. Recursion depth is bounded by
// the tree height.
func (t *Tree[K, V]) destroyNode(id nodeID, destroy DestroyFunc[V]) {
	n := t.getNode(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		if destroy != nil {
			for _, r := range n.records {
				destroy(r.value)
			}
		}
	} else {
		for _, c := range n.children {
			t.destroyNode(c, destroy)
		}
	}
	clear(n.keys)
	clear(n.records)
	n.keys = nil
	n.records = nil
	n.children = nil
	n.parent = nilNode
	n.next = nilNode
	t.nodes[id] = nil
}
