// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import "github.com/cockroachdb/errors"

// verify checks every structural invariant of the tree. It is meant for
// tests; a correct tree never fails it.
func (t *Tree[K, V]) verify() error {
	if t.root == nilNode {
		if t.size != 0 {
			return errors.AssertionFailedf("empty tree reports %d keys", t.size)
		}
		return nil
	}
	root := t.getNode(t.root)
	if root.parent != nilNode {
		return errors.AssertionFailedf("root %d has parent %d", root.id, root.parent)
	}

	v := verifier[K, V]{tree: t, leafDepth: -1}
	if err := v.walk(root, 0, nil, nil); err != nil {
		return err
	}
	if v.count != t.size {
		return errors.AssertionFailedf("tree holds %d keys, reports %d", v.count, t.size)
	}
	return t.verifyLeafChain(v.leaves)
}

type verifier[K any, V any] struct {
	tree      *Tree[K, V]
	leafDepth int
	count     uint64
	leaves    []nodeID
}

// walk checks n and its subtree. lo and hi bound the keys of the subtree:
// lo <= k < hi, nil meaning unbounded.
func (v *verifier[K, V]) walk(n *node[K, V], depth int, lo, hi *K) error {
	t := v.tree
	if n.getNumKeys() > t.order-1 {
		return errors.AssertionFailedf("node %d holds %d keys, order %d", n.id, n.getNumKeys(), t.order)
	}
	if n.id != t.root {
		minKeys := cut(t.order) - 1
		if n.isLeaf() {
			minKeys = t.order / 2
		}
		if n.getNumKeys() < minKeys {
			return errors.AssertionFailedf("node %d holds %d keys, want at least %d", n.id, n.getNumKeys(), minKeys)
		}
	}
	for i, k := range n.keys {
		if i > 0 && t.cmp(n.keys[i-1], k) >= 0 {
			return errors.AssertionFailedf("node %d keys out of order at %d", n.id, i)
		}
		if lo != nil && t.cmp(k, *lo) < 0 {
			return errors.AssertionFailedf("node %d key %d below its lower separator", n.id, i)
		}
		if hi != nil && t.cmp(k, *hi) >= 0 {
			return errors.AssertionFailedf("node %d key %d at or above its upper separator", n.id, i)
		}
	}

	if n.isLeaf() {
		if len(n.records) != len(n.keys) {
			return errors.AssertionFailedf("leaf %d has %d keys and %d records", n.id, len(n.keys), len(n.records))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.AssertionFailedf("leaf %d at depth %d, others at %d", n.id, depth, v.leafDepth)
		}
		v.count += uint64(len(n.keys))
		v.leaves = append(v.leaves, n.id)
		return nil
	}

	if len(n.keys) == 0 || len(n.children) != len(n.keys)+1 {
		return errors.AssertionFailedf("internal node %d has %d keys and %d children", n.id, len(n.keys), len(n.children))
	}
	for i, c := range n.children {
		child := t.getNode(c)
		if child == nil {
			return errors.AssertionFailedf("internal node %d child %d is unallocated", n.id, i)
		}
		if child.parent != n.id {
			return errors.AssertionFailedf("node %d points to parent %d, linked from %d", child.id, child.parent, n.id)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}

// verifyLeafChain checks that the next links visit exactly the leaves found
// by the depth-first walk, in the same order.
func (t *Tree[K, V]) verifyLeafChain(leaves []nodeID) error {
	n := t.leftmostLeaf()
	for i, want := range leaves {
		if n == nil {
			return errors.AssertionFailedf("leaf chain ends after %d of %d leaves", i, len(leaves))
		}
		if n.id != want {
			return errors.AssertionFailedf("leaf chain visits %d at position %d, want %d", n.id, i, want)
		}
		n = t.getNode(n.next)
	}
	if n != nil {
		return errors.AssertionFailedf("leaf chain continues past the last leaf to %d", n.id)
	}
	return nil
}
