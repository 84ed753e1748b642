// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package loader

import (
	"context"
	"io"

	bplus "github.com/absolutelightning/go-bplus-index"
	"golang.org/x/sync/errgroup"
)

// ShardFunc fills one shard's tree from its reader.
type ShardFunc[V any] func(ctx context.Context, r io.Reader, t *bplus.Tree[int32, V]) error

// PairsShard is a ShardFunc loading pair lines with LoadPairs.
func PairsShard(opts ...LoadOption) ShardFunc[int32] {
	return func(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int32]) error {
		_, err := LoadPairs(ctx, r, t, opts...)
		return err
	}
}

// OffsetsShard is a ShardFunc loading binary offset indexes with
// LoadOffsets.
func OffsetsShard(opts ...LoadOption) ShardFunc[int64] {
	return func(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int64]) error {
		_, err := LoadOffsets(ctx, r, t, opts...)
		return err
	}
}

// FastaShard is a ShardFunc indexing a FASTA stream with IndexFasta.
// Offsets are relative to the start of each shard's reader.
func FastaShard(opts ...LoadOption) ShardFunc[int64] {
	return func(ctx context.Context, r io.Reader, t *bplus.Tree[int32, int64]) error {
		_, err := IndexFasta(ctx, r, t, opts...)
		return err
	}
}

// ShardSet is a group of independently built trees, searched in order.
type ShardSet[V any] []*bplus.Tree[int32, V]

// BuildSharded builds one tree per reader, each on its own goroutine, and
// returns once all of them are done. Every tree is owned by exactly one
// goroutine until then. The first failure cancels the others and is
// returned.
func BuildSharded[V any](ctx context.Context, shards []io.Reader, build ShardFunc[V], opts ...bplus.Option) (ShardSet[V], error) {
	set := make(ShardSet[V], len(shards))
	for i := range shards {
		t, err := bplus.New[int32, V](opts...)
		if err != nil {
			return nil, err
		}
		set[i] = t
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range shards {
		i, r := i, r
		g.Go(func() error {
			return build(gctx, r, set[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// Find returns the value of key from the first shard holding it.
func (s ShardSet[V]) Find(key int32) (V, bool) {
	for _, t := range s {
		if v, ok := t.Find(key); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Len is the total number of keys across shards. Keys present in more than
// one shard count once per shard.
func (s ShardSet[V]) Len() int {
	n := 0
	for _, t := range s {
		n += t.Len()
	}
	return n
}
