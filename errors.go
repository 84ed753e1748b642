// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidOrder is returned when a tree is configured with an order
	// outside [MinOrder, MaxOrder].
	ErrInvalidOrder = errors.New("invalid tree order")

	// ErrNilComparator is returned by NewWithComparator when no key
	// comparator is supplied.
	ErrNilComparator = errors.New("nil key comparator")
)
