// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// Iterator is used to iterate over the entries of a tree in ascending key
// order by following the leaf chain. It is single pass; inserting into the
// tree while iterating leaves the iterator position undefined.
type Iterator[K any, V any] struct {
	tree *Tree[K, V]
	leaf *node[K, V]
	pos  int
}

// Iterator returns an iterator positioned before the smallest key.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		tree: t,
		leaf: t.leftmostLeaf(),
	}
}

// Front returns the key the next call to Next will yield.
func (i *Iterator[K, V]) Front() (K, bool) {
	var zero K
	if !i.advance() {
		return zero, false
	}
	return i.leaf.keys[i.pos], true
}

// Next returns the next key and value, or false once every entry has been
// visited.
func (i *Iterator[K, V]) Next() (K, V, bool) {
	var zeroK K
	var zeroV V
	if !i.advance() {
		return zeroK, zeroV, false
	}
	k, v := i.leaf.keys[i.pos], i.leaf.records[i.pos].value
	i.pos++
	return k, v, true
}

// advance moves past exhausted leaves and reports whether an entry remains.
func (i *Iterator[K, V]) advance() bool {
	for i.leaf != nil && i.pos >= len(i.leaf.keys) {
		i.leaf = i.tree.getNode(i.leaf.next)
		i.pos = 0
	}
	return i.leaf != nil
}
