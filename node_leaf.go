// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// startNewTree makes a single leaf holding key the root.
func (t *Tree[K, V]) startNewTree(key K, value V) {
	leaf := t.allocNode(true)
	leaf.keys = append(leaf.keys, key)
	leaf.records = append(leaf.records, record[V]{value: value})
	t.root = leaf.id
	t.size = 1
}

// insertIntoLeaf places key at idx in a leaf that has room for it.
func (n *node[K, V]) insertIntoLeaf(idx int, key K, value V) {
	n.keys = insertAt(n.keys, idx, key)
	n.records = insertAt(n.records, idx, record[V]{value: value})
}

// insertIntoLeafAfterSplitting inserts into a full leaf by spilling the
// upper half of the merged entries into a new right sibling, then pushes a
// copy of the sibling's first key into the parent.
func (t *Tree[K, V]) insertIntoLeafAfterSplitting(leaf *node[K, V], idx int, key K, value V) {
	tempKeys := make([]K, 0, t.order)
	tempKeys = append(tempKeys, leaf.keys[:idx]...)
	tempKeys = append(tempKeys, key)
	tempKeys = append(tempKeys, leaf.keys[idx:]...)

	tempRecords := make([]record[V], 0, t.order)
	tempRecords = append(tempRecords, leaf.records[:idx]...)
	tempRecords = append(tempRecords, record[V]{value: value})
	tempRecords = append(tempRecords, leaf.records[idx:]...)

	split := cut(t.order)

	newLeaf := t.allocNode(true)
	newLeaf.keys = append(newLeaf.keys, tempKeys[split:]...)
	newLeaf.records = append(newLeaf.records, tempRecords[split:]...)

	// Clear the vacated slots so the leaf no longer pins moved values.
	old := len(leaf.keys)
	copy(leaf.keys, tempKeys[:split])
	copy(leaf.records, tempRecords[:split])
	clear(leaf.keys[split:old])
	clear(leaf.records[split:old])
	leaf.keys = leaf.keys[:split]
	leaf.records = leaf.records[:split]

	newLeaf.next = leaf.next
	leaf.next = newLeaf.id
	newLeaf.parent = leaf.parent

	t.insertIntoParent(leaf, newLeaf.keys[0], newLeaf)
}
