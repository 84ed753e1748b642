// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// insertIntoParent links right into the tree as the sibling immediately
// after left, separated by key. Splits propagate upward until a node has
// room or a new root is created.
func (t *Tree[K, V]) insertIntoParent(left *node[K, V], key K, right *node[K, V]) {
	parent := t.getNode(left.parent)
	if parent == nil {
		t.insertIntoNewRoot(left, key, right)
		return
	}

	leftIndex := parent.childIndexOf(left.id)
	if len(parent.keys) < t.order-1 {
		parent.insertIntoNode(leftIndex, key, right.id)
		return
	}
	t.insertIntoNodeAfterSplitting(parent, leftIndex, key, right)
}

// insertIntoNewRoot grows the tree by one level.
func (t *Tree[K, V]) insertIntoNewRoot(left *node[K, V], key K, right *node[K, V]) {
	root := t.allocNode(false)
	root.keys = append(root.keys, key)
	root.children = append(root.children, left.id, right.id)
	left.parent = root.id
	right.parent = root.id
	t.root = root.id
}

// insertIntoNode adds key and the child to its right after slot leftIndex
// in an internal node that has room.
func (n *node[K, V]) insertIntoNode(leftIndex int, key K, right nodeID) {
	n.keys = insertAt(n.keys, leftIndex, key)
	n.children = insertAt(n.children, leftIndex+1, right)
}

// insertIntoNodeAfterSplitting handles a full internal node. The merged
// order keys and order+1 children are divided at cut(order); the key at the
// cut moves up to the parent instead of being copied.
func (t *Tree[K, V]) insertIntoNodeAfterSplitting(old *node[K, V], leftIndex int, key K, right *node[K, V]) {
	tempKeys := make([]K, 0, t.order)
	tempKeys = append(tempKeys, old.keys[:leftIndex]...)
	tempKeys = append(tempKeys, key)
	tempKeys = append(tempKeys, old.keys[leftIndex:]...)

	tempChildren := make([]nodeID, 0, t.order+1)
	tempChildren = append(tempChildren, old.children[:leftIndex+1]...)
	tempChildren = append(tempChildren, right.id)
	tempChildren = append(tempChildren, old.children[leftIndex+1:]...)

	split := cut(t.order)
	kPrime := tempKeys[split-1]

	newNode := t.allocNode(false)
	newNode.keys = append(newNode.keys, tempKeys[split:]...)
	newNode.children = append(newNode.children, tempChildren[split:]...)

	oldKeys := len(old.keys)
	copy(old.keys, tempKeys[:split-1])
	clear(old.keys[split-1 : oldKeys])
	old.keys = old.keys[:split-1]
	old.children = append(old.children[:0], tempChildren[:split]...)

	newNode.parent = old.parent
	for _, c := range newNode.children {
		t.getNode(c).parent = newNode.id
	}

	t.insertIntoParent(old, kPrime, newNode)
}
