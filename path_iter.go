// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// pathIterator walks from the root down to the leaf whose key range covers
// path, yielding each node on the way together with the child slot taken
// out of it. The leaf is yielded last with a child slot of -1.
type pathIterator[K any, V any] struct {
	tree *Tree[K, V]
	path K
	node *node[K, V]
}

func (t *Tree[K, V]) pathIterator(path K) pathIterator[K, V] {
	return pathIterator[K, V]{
		tree: t,
		path: path,
		node: t.getNode(t.root),
	}
}

func (i *pathIterator[K, V]) Next() (*node[K, V], int, bool) {
	cur := i.node
	if cur == nil {
		return nil, -1, false
	}
	if cur.isLeaf() {
		i.node = nil
		return cur, -1, true
	}
	idx := childIndex(cur.keys, i.path, i.tree.cmp)
	i.node = i.tree.getNode(cur.children[idx])
	return cur, idx, true
}
