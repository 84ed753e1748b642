// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package taxonomy

import (
	"github.com/RoaringBitmap/roaring/v2"
	bplus "github.com/absolutelightning/go-bplus-index"
)

// Filter returns the id of every taxon in db that has an included id in its
// lineage, itself included, unless the taxon is listed in skip. Skipping a
// taxon does not skip its descendants. Negative ids cannot be held in the
// set and are ignored.
func Filter(db DB, include, skip []int32) *roaring.Bitmap {
	in := toBitmap(include)
	sk := toBitmap(skip)
	out := roaring.New()
	if in.IsEmpty() {
		return out
	}

	for _, tax := range db.RecordsToArray() {
		if tax.ID < 0 || sk.Contains(uint32(tax.ID)) {
			continue
		}
		for _, id := range Lineage(db, tax.ID) {
			if id >= 0 && in.Contains(uint32(id)) {
				out.Add(uint32(tax.ID))
				break
			}
		}
	}
	return out
}

// IncludedIndex loads a filter result into an index mapping each id to
// itself, for lookups alongside other int32 keyed indexes.
func IncludedIndex(set *roaring.Bitmap, opts ...bplus.Option) (*bplus.Tree[int32, int32], error) {
	t, err := bplus.New[int32, int32](opts...)
	if err != nil {
		return nil, err
	}
	it := set.Iterator()
	for it.HasNext() {
		id := int32(it.Next())
		t.Insert(id, id)
	}
	return t, nil
}

func toBitmap(ids []int32) *roaring.Bitmap {
	b := roaring.New()
	for _, id := range ids {
		if id >= 0 {
			b.Add(uint32(id))
		}
	}
	return b
}
