// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Comparator orders keys. It returns a negative number when a < b, zero
// when they are equal and a positive number when a > b.
type Comparator[K any] func(a, b K) int

// Compare is the natural ordering of any ordered key type.
func Compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// BytesComparator orders byte-string keys lexicographically. The tree keeps
// the key slices it is given, so a key must not be modified after Insert;
// copy it first when the caller reuses its buffer.
func BytesComparator(a, b []byte) int {
	return bytes.Compare(a, b)
}

// cut returns the split point of a full buffer of the given length,
// rounding up so the left sibling keeps the extra entry.
func cut(length int) int {
	if length%2 == 0 {
		return length / 2
	}
	return length/2 + 1
}

// searchLeaf returns the position of key in a sorted key slice and whether
// it is present. When absent the position is where it would be inserted.
func searchLeaf[K any](keys []K, key K, cmp Comparator[K]) (int, bool) {
	idx := 0
	for idx < len(keys) {
		c := cmp(keys[idx], key)
		if c == 0 {
			return idx, true
		}
		if c > 0 {
			break
		}
		idx++
	}
	return idx, false
}

// childIndex picks the child to descend into. Keys equal to a separator
// belong to the right subtree.
func childIndex[K any](keys []K, key K, cmp Comparator[K]) int {
	idx := 0
	for idx < len(keys) && cmp(key, keys[idx]) >= 0 {
		idx++
	}
	return idx
}

func insertAt[T any](s []T, idx int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}
