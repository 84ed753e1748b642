// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package taxonomy

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver answers lineage queries against a taxonomy index, keeping the
// most recently resolved lineages in a bounded cache. Like the index it
// reads, a Resolver is not safe for concurrent use with writers of db.
type Resolver struct {
	db    DB
	cache *lru.Cache[int32, []int32]
}

// NewResolver builds a resolver caching up to size lineages.
func NewResolver(db DB, size int) (*Resolver, error) {
	cache, err := lru.New[int32, []int32](size)
	if err != nil {
		return nil, err
	}
	return &Resolver{db: db, cache: cache}, nil
}

// Lineage is Lineage(db, id) through the cache. The returned slice is
// shared with the cache and must not be modified.
func (r *Resolver) Lineage(id int32) []int32 {
	if lineage, ok := r.cache.Get(id); ok {
		return lineage
	}
	lineage := Lineage(r.db, id)
	if lineage != nil {
		r.cache.Add(id, lineage)
	}
	return lineage
}

// Ranks fills the report columns for id: the taxon itself, where "no rank"
// counts as the strain column, then every ranked ancestor. It returns
// false when id or its parent is not indexed.
func (r *Resolver) Ranks(id int32) (RankLine, bool) {
	var line RankLine
	tax, ok := r.db.Find(id)
	if !ok {
		return line, false
	}
	if i := RankIndex(tax.Rank, true); i >= 0 {
		line[i] = RankCell{ID: tax.ID, Name: tax.Name}
	}

	if _, ok := r.db.Find(tax.ParentID); !ok {
		return line, false
	}
	for _, ancestor := range r.Lineage(tax.ParentID) {
		a, ok := r.db.Find(ancestor)
		if !ok {
			continue
		}
		if i := RankIndex(a.Rank, false); i >= 0 {
			line[i] = RankCell{ID: a.ID, Name: a.Name}
		}
	}
	return line, true
}
