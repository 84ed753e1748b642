// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// SeekLowerBound is used to seek the iterator to the smallest key that is
// greater or equal to the given key. If every key is smaller the iterator
// is exhausted.
func (i *Iterator[K, V]) SeekLowerBound(key K) {
	leaf := i.tree.findLeaf(key)
	if leaf == nil {
		i.leaf = nil
		i.pos = 0
		return
	}
	idx, _ := searchLeaf(leaf.keys, key, i.tree.cmp)
	i.leaf = leaf
	i.pos = idx
}
