// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedLine is returned for a pair line that is not two integers.
	ErrMalformedLine = errors.New("malformed pair line")

	// ErrTruncatedRecord is returned when an offset index ends inside a
	// record.
	ErrTruncatedRecord = errors.New("truncated offset record")

	// ErrBadHeader is returned when a sequence header carries no GI number.
	ErrBadHeader = errors.New("header has no gi number")

	// ErrLengthMismatch is returned when keys and offsets differ in length.
	ErrLengthMismatch = errors.New("keys and offsets differ in length")
)
