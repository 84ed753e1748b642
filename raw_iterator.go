// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

// rawIterator visits each of the nodes in the tree, even the ones that are not
// leaves, in level order. It keeps track of the depth of the current node,
// which is what printing and structural checks need.
type rawIterator[K any, V any] struct {
	tree *Tree[K, V]

	// queue keeps track of nodes in the frontier.
	queue []rawQueueEntry

	// pos is the current position of the iterator.
	pos *node[K, V]

	// depth is the number of edges between the root and pos.
	depth int
}

// rawQueueEntry pairs a frontier node with its depth.
type rawQueueEntry struct {
	id    nodeID
	depth int
}

func (t *Tree[K, V]) rawIterator() *rawIterator[K, V] {
	i := &rawIterator[K, V]{tree: t}
	if t.root != nilNode {
		i.queue = []rawQueueEntry{{id: t.root}}
	}
	return i
}

// Front returns the current node that has been iterated to.
func (i *rawIterator[K, V]) Front() *node[K, V] {
	return i.pos
}

// Depth returns the depth of the current node.
func (i *rawIterator[K, V]) Depth() int {
	return i.depth
}

// Next advances the iterator to the next node.
func (i *rawIterator[K, V]) Next() {
	if len(i.queue) == 0 {
		i.pos = nil
		i.depth = 0
		return
	}
	entry := i.queue[0]
	i.queue = i.queue[1:]

	elem := i.tree.getNode(entry.id)
	if !elem.isLeaf() {
		for _, c := range elem.children {
			i.queue = append(i.queue, rawQueueEntry{id: c, depth: entry.depth + 1})
		}
	}
	i.pos = elem
	i.depth = entry.depth
}
