// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/NVIDIA/cstruct"
	bplus "github.com/absolutelightning/go-bplus-index"
	"github.com/cockroachdb/errors"
)

// offsetRecord is one entry of a binary offset index: a sequence key and
// the byte offset of its record in the sequence file. On disk it is packed
// little endian without padding.
type offsetRecord struct {
	Key    int32
	Offset int64
}

var offsetRecordSize = func() int {
	size, _, err := cstruct.Examine(offsetRecord{})
	if err != nil {
		panic(err)
	}
	return int(size)
}()

// OffsetWriter appends records to a binary offset index.
type OffsetWriter struct {
	w *bufio.Writer
}

// NewOffsetWriter returns a writer buffering records into w. Flush must be
// called once every record has been written.
func NewOffsetWriter(w io.Writer) *OffsetWriter {
	return &OffsetWriter{w: bufio.NewWriter(w)}
}

// Write appends one record.
func (o *OffsetWriter) Write(key int32, offset int64) error {
	buf, err := cstruct.Pack(offsetRecord{Key: key, Offset: offset}, cstruct.LittleEndian)
	if err != nil {
		return errors.Wrapf(err, "packing key %d", key)
	}
	_, err = o.w.Write(buf)
	return err
}

// Flush writes any buffered records.
func (o *OffsetWriter) Flush() error {
	return o.w.Flush()
}

// WriteOffsets writes keys[i], offsets[i] pairs as one offset index.
func WriteOffsets(w io.Writer, keys []int32, offsets []int64) error {
	if len(keys) != len(offsets) {
		return errors.Wrapf(ErrLengthMismatch, "%d keys, %d offsets", len(keys), len(offsets))
	}
	ow := NewOffsetWriter(w)
	for i, k := range keys {
		if err := ow.Write(k, offsets[i]); err != nil {
			return err
		}
	}
	return ow.Flush()
}

// LoadOffsets indexes every record of a binary offset index from r into t.
// A stream that ends partway through a record fails with
// ErrTruncatedRecord after indexing every complete record before it.
func LoadOffsets(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int64], opts ...LoadOption) (Stats, error) {
	cfg := buildLoadConfig(opts)
	start := time.Now()
	var stats Stats

	br := bufio.NewReader(r)
	buf := make([]byte, offsetRecordSize)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		n, err := io.ReadFull(br, buf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return stats, errors.Wrapf(ErrTruncatedRecord, "%d trailing bytes after record %d", n, stats.Records)
		}
		if err != nil {
			return stats, errors.Wrap(err, "reading offsets")
		}

		var rec offsetRecord
		if _, err := cstruct.Unpack(buf, &rec, cstruct.LittleEndian); err != nil {
			return stats, errors.Wrapf(err, "unpacking record %d", stats.Records)
		}
		stats.Records++
		if !t.Insert(rec.Key, rec.Offset) {
			stats.Duplicates++
		}
		cfg.progress(stats.Records)
	}
	stats.Elapsed = time.Since(start)
	cfg.done("offsets", stats)
	return stats, nil
}
