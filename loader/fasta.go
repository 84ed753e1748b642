// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	bplus "github.com/absolutelightning/go-bplus-index"
	"github.com/cockroachdb/errors"
)

// IndexFasta indexes every record of a FASTA stream by the GI number in its
// header, mapping it to the byte offset where the record's header line
// starts. A GI seen twice keeps its first offset.
func IndexFasta(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int64], opts ...LoadOption) (Stats, error) {
	cfg := buildLoadConfig(opts)
	start := time.Now()

	stats, err := scanFasta(ctx, r, func(gi int32, offset int64) (bool, error) {
		return t.Insert(gi, offset), nil
	}, cfg)
	if err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(start)
	cfg.done("fasta", stats)
	return stats, nil
}

// WriteFastaIndex writes a binary offset index for a FASTA stream to w, one
// record per header in file order. Duplicate GIs are written as they
// appear; LoadOffsets keeps the first.
func WriteFastaIndex(ctx context.Context, r io.Reader, w io.Writer, opts ...LoadOption) (Stats, error) {
	cfg := buildLoadConfig(opts)
	start := time.Now()

	ow := NewOffsetWriter(w)
	stats, err := scanFasta(ctx, r, func(gi int32, offset int64) (bool, error) {
		return true, ow.Write(gi, offset)
	}, cfg)
	if err != nil {
		return stats, err
	}
	if err := ow.Flush(); err != nil {
		return stats, errors.Wrap(err, "flushing fasta index")
	}
	stats.Elapsed = time.Since(start)
	cfg.done("fasta index", stats)
	return stats, nil
}

// scanFasta calls emit with the GI and starting offset of every record.
// emit reports whether the GI was new.
func scanFasta(ctx context.Context, r io.Reader, emit func(gi int32, offset int64) (bool, error), cfg loadConfig) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	var offset int64
	lineNumber := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return stats, errors.Wrap(readErr, "reading fasta")
		}
		if line == "" {
			break
		}
		lineNumber++

		if strings.HasPrefix(line, ">") {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			gi, err := GIFromHeader(line)
			if err != nil {
				return stats, errors.Wrapf(err, "line %d", lineNumber)
			}
			added, err := emit(gi, offset)
			if err != nil {
				return stats, err
			}
			stats.Records++
			if !added {
				stats.Duplicates++
			}
			cfg.progress(stats.Records)
		}

		offset += int64(len(line))
		if readErr == io.EOF {
			break
		}
	}
	return stats, nil
}
