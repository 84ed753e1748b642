// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	bplus "github.com/absolutelightning/go-bplus-index"
	"github.com/cockroachdb/errors"
)

// LoadPairs indexes "key<TAB>value" lines from r into t, such as a gi to
// taxid table. Blank lines are skipped. Any other line that is not two
// int32 values stops the load with an error naming the line. A key seen
// twice keeps its first value.
func LoadPairs(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int32], opts ...LoadOption) (Stats, error) {
	cfg := buildLoadConfig(opts)
	start := time.Now()
	var stats Stats

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, err := parsePair(line)
		if err != nil {
			return stats, errors.Wrapf(err, "line %d", lineNumber)
		}
		stats.Records++
		if !t.Insert(key, value) {
			stats.Duplicates++
		}
		cfg.progress(stats.Records)
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrap(err, "reading pairs")
	}
	stats.Elapsed = time.Since(start)
	cfg.done("pairs", stats)
	return stats, nil
}

func parsePair(line string) (int32, int32, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedLine, "%d fields in %q", len(fields), line)
	}
	key, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, errors.Mark(errors.Wrapf(err, "key %q", fields[0]), ErrMalformedLine)
	}
	value, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, errors.Mark(errors.Wrapf(err, "value %q", fields[1]), ErrMalformedLine)
	}
	return int32(key), int32(value), nil
}
