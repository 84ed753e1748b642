// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered index from unique keys to values, stored as a B+ tree.
// Values live only in the leaves, which are chained left to right for
// in-order scans. An empty tree has no root node at all.
//
// A Tree is not safe for concurrent use. Independent trees share no state
// and may be used from different goroutines.
type Tree[K any, V any] struct {
	root   nodeID
	nodes  []*node[K, V]
	size   uint64
	order  int
	cmp    Comparator[K]
	logger *zap.Logger
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[K any, V any] func(k K, v V) bool

// New builds an empty tree over a naturally ordered key type such as int32
// or string.
func New[K constraints.Ordered, V any](opts ...Option) (*Tree[K, V], error) {
	return NewWithComparator[K, V](Compare[K], opts...)
}

// NewWithComparator builds an empty tree ordered by cmp. Keys are stored as
// given; for reference types such as []byte the caller must not modify a key
// after inserting it.
func NewWithComparator[K any, V any](cmp Comparator[K], opts ...Option) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	t := &Tree[K, V]{
		order:  cfg.Order,
		cmp:    cmp,
		logger: cfg.Logger,
	}
	t.resetArena()
	return t, nil
}

func (t *Tree[K, V]) resetArena() {
	t.nodes = []*node[K, V]{nil}
	t.root = nilNode
	t.size = 0
}

// Len is used to return the number of elements in the tree
func (t *Tree[K, V]) Len() int {
	return int(t.size)
}

// Order returns the configured maximum fan-out.
func (t *Tree[K, V]) Order() int {
	return t.order
}

// Insert stores value under key and reports whether it did. A key that is
// already present is left untouched and Insert returns false; the tree
// only takes ownership of value when it returns true.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.root == nilNode {
		t.startNewTree(key, value)
		return true
	}

	leaf := t.findLeaf(key)
	idx, found := searchLeaf(leaf.keys, key, t.cmp)
	if found {
		return false
	}

	if len(leaf.keys) < t.order-1 {
		leaf.insertIntoLeaf(idx, key, value)
	} else {
		t.insertIntoLeafAfterSplitting(leaf, idx, key, value)
	}
	t.size++
	return true
}

// Find returns the value stored under key.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	var zero V
	leaf := t.findLeaf(key)
	if leaf == nil {
		return zero, false
	}
	idx, found := searchLeaf(leaf.keys, key, t.cmp)
	if !found {
		return zero, false
	}
	return leaf.records[idx].value, true
}

// Height is the number of edges between the root and any leaf: 0 for a
// tree that is a single leaf and -1 for an empty tree.
func (t *Tree[K, V]) Height() int {
	n := t.getNode(t.root)
	if n == nil {
		return -1
	}
	h := 0
	for !n.isLeaf() {
		n = t.getNode(n.children[0])
		h++
	}
	return h
}

// Minimum returns the smallest key and its value.
func (t *Tree[K, V]) Minimum() (K, V, bool) {
	var zeroK K
	var zeroV V
	n := t.leftmostLeaf()
	if n == nil {
		return zeroK, zeroV, false
	}
	return n.keys[0], n.records[0].value, true
}

// Maximum returns the largest key and its value.
func (t *Tree[K, V]) Maximum() (K, V, bool) {
	var zeroK K
	var zeroV V
	n := t.getNode(t.root)
	if n == nil {
		return zeroK, zeroV, false
	}
	for !n.isLeaf() {
		n = t.getNode(n.children[len(n.children)-1])
	}
	last := len(n.keys) - 1
	return n.keys[last], n.records[last].value, true
}

// Walk is used to walk the tree in ascending key order
func (t *Tree[K, V]) Walk(fn WalkFn[K, V]) {
	for n := t.leftmostLeaf(); n != nil; n = t.getNode(n.next) {
		for i, k := range n.keys {
			if fn(k, n.records[i].value) {
				return
			}
		}
	}
}

// RecordsToArray returns every stored value in ascending key order.
func (t *Tree[K, V]) RecordsToArray() []V {
	out := make([]V, 0, t.size)
	t.Walk(func(_ K, v V) bool {
		out = append(out, v)
		return false
	})
	return out
}

// Keys returns every stored key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	t.Walk(func(k K, _ V) bool {
		out = append(out, k)
		return false
	})
	return out
}

func (t *Tree[K, V]) leftmostLeaf() *node[K, V] {
	n := t.getNode(t.root)
	if n == nil {
		return nil
	}
	for !n.isLeaf() {
		n = t.getNode(n.children[0])
	}
	return n
}

// findLeaf descends to the leaf whose key range covers key. Returns nil on
// an empty tree.
func (t *Tree[K, V]) findLeaf(key K) *node[K, V] {
	if t.root == nilNode {
		if ce := t.logger.Check(zap.DebugLevel, "empty tree"); ce != nil {
			ce.Write()
		}
		return nil
	}
	it := t.pathIterator(key)
	var leaf *node[K, V]
	for {
		n, child, ok := it.Next()
		if !ok {
			break
		}
		if ce := t.logger.Check(zap.DebugLevel, "descend"); ce != nil {
			if n.isLeaf() {
				ce.Write(zap.Uint32("node", uint32(n.getId())), zap.Any("leaf", n.keys))
			} else {
				ce.Write(zap.Uint32("node", uint32(n.getId())), zap.Any("keys", n.keys), zap.Int("child", child))
			}
		}
		leaf = n
	}
	return leaf
}
