// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// GIFromHeader extracts the GI number from a FASTA header of the form
// ">gi|12345|gb|...". The leading '>' is optional.
func GIFromHeader(header string) (int32, error) {
	header = strings.TrimPrefix(strings.TrimSpace(header), ">")
	tag, rest, ok := strings.Cut(header, "|")
	if !ok || tag != "gi" {
		return 0, errors.Wrapf(ErrBadHeader, "%q", header)
	}
	num, _, _ := strings.Cut(rest, "|")
	gi, err := strconv.ParseInt(num, 10, 32)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "gi in %q", header), ErrBadHeader)
	}
	return int32(gi), nil
}
