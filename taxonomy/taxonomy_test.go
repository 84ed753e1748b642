// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package taxonomy

import (
	"fmt"
	"testing"

	bplus "github.com/absolutelightning/go-bplus-index"
	"github.com/stretchr/testify/require"
)

func testTaxa() []*Taxon {
	return []*Taxon{
		{ID: 1, ParentID: 1, Name: "root", Rank: "no rank"},
		{ID: 2, ParentID: 1, Name: "Bacteria", Rank: "superkingdom"},
		{ID: 1224, ParentID: 2, Name: "Proteobacteria", Rank: "phylum"},
		{ID: 1236, ParentID: 1224, Name: "Gammaproteobacteria", Rank: "class"},
		{ID: 91347, ParentID: 1236, Name: "Enterobacterales", Rank: "order"},
		{ID: 543, ParentID: 91347, Name: "Enterobacteriaceae", Rank: "family"},
		{ID: 561, ParentID: 543, Name: "Escherichia", Rank: "genus"},
		{ID: 562, ParentID: 561, Name: "Escherichia coli", Rank: "species"},
		{ID: 83333, ParentID: 562, Name: "Escherichia coli K-12", Rank: "no rank"},
		{ID: 590, ParentID: 543, Name: "Salmonella", Rank: "genus"},
		{ID: 1783272, ParentID: 2, Name: "Terrabacteria group", Rank: "no rank"},
		{ID: 1239, ParentID: 1783272, Name: "Firmicutes", Rank: "phylum"},
		{ID: 91061, ParentID: 1239, Name: "Bacilli", Rank: "class"},
		{ID: 1385, ParentID: 91061, Name: "Bacillales", Rank: "order"},
	}
}

func testDB(t *testing.T) DB {
	t.Helper()
	db, err := NewDB(bplus.WithOrder(4))
	require.NoError(t, err)
	for _, tax := range testTaxa() {
		require.True(t, tax.Index(db))
	}
	return db
}

func TestLineage(t *testing.T) {
	t.Parallel()

	db := testDB(t)

	type exp struct {
		id   int32
		want []int32
	}
	cases := []exp{
		{83333, []int32{83333, 562, 561, 543, 91347, 1236, 1224, 2}},
		{590, []int32{590, 543, 91347, 1236, 1224, 2}},
		{2, []int32{2}},
		{1, []int32{1}},
		{1385, []int32{1385, 91061, 1239, 1783272, 2}},
		{999, nil},
	}
	for idx, test := range cases {
		test := test
		t.Run(fmt.Sprintf("case%03d", idx), func(t *testing.T) {
			require.Equal(t, test.want, Lineage(db, test.id))
		})
	}
}

func TestLineage_StopsAtMissingParent(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	orphan := &Taxon{ID: 7, ParentID: 8, Name: "orphan", Rank: "species"}
	require.True(t, orphan.Index(db))
	require.Equal(t, []int32{7}, Lineage(db, 7))
}

func TestLineage_BoundedOnCycle(t *testing.T) {
	t.Parallel()

	db, err := NewDB()
	require.NoError(t, err)
	(&Taxon{ID: 10, ParentID: 11}).Index(db)
	(&Taxon{ID: 11, ParentID: 10}).Index(db)
	require.Len(t, Lineage(db, 10), MaxLineageDepth)
}

func TestTaxon_IndexDuplicate(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	dup := &Taxon{ID: 562, ParentID: 1, Name: "impostor"}
	require.False(t, dup.Index(db))
	tax, ok := db.Find(562)
	require.True(t, ok)
	require.Equal(t, "Escherichia coli", tax.Name)
}

func TestBulkFreeDestroysTaxa(t *testing.T) {
	t.Parallel()

	db, err := NewDB(bplus.WithOrder(3))
	require.NoError(t, err)
	taxa := testTaxa()
	for _, tax := range taxa {
		tax.Index(db)
	}
	db.BulkFree(bplus.DestroyValue[*Taxon])
	require.Equal(t, 0, db.Len())
	for _, tax := range taxa {
		require.Empty(t, tax.Name)
		require.Empty(t, tax.Rank)
	}
}

func TestRankIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, RankIndex("no rank", true))
	require.Equal(t, -1, RankIndex("no rank", false))
	require.Equal(t, 1, RankIndex("species", false))
	require.Equal(t, 7, RankIndex("superkingdom", true))
	require.Equal(t, -1, RankIndex("subspecies", true))
	require.Equal(t, -1, RankIndex("", true))
}

func TestResolver_Ranks(t *testing.T) {
	t.Parallel()

	r, err := NewResolver(testDB(t), 16)
	require.NoError(t, err)

	line, ok := r.Ranks(83333)
	require.True(t, ok)
	require.Equal(t,
		"Escherichia coli K-12 (83333)\tEscherichia coli (562)\tEscherichia (561)\t"+
			"Enterobacteriaceae (543)\tEnterobacterales (91347)\tGammaproteobacteria (1236)\t"+
			"Proteobacteria (1224)\tBacteria (2)",
		line.String())

	// Unranked ancestors do not fill the strain column.
	line, ok = r.Ranks(1239)
	require.True(t, ok)
	require.Equal(t, "\t\t\t\t\t\tFirmicutes (1239)\tBacteria (2)", line.String())

	_, ok = r.Ranks(4242)
	require.False(t, ok)
}

func TestResolver_CachesLineage(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	r, err := NewResolver(db, 2)
	require.NoError(t, err)

	first := r.Lineage(562)
	require.Equal(t, Lineage(db, 562), first)
	require.Equal(t, 1, r.cache.Len())

	r.Lineage(561)
	r.Lineage(543)
	require.Equal(t, 2, r.cache.Len())
	_, ok := r.cache.Get(562)
	require.False(t, ok)

	require.Nil(t, r.Lineage(31337))
	require.Equal(t, 2, r.cache.Len())

	_, err = NewResolver(db, 0)
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	db := testDB(t)

	type exp struct {
		include []int32
		skip    []int32
		want    []uint32
	}
	cases := []exp{
		{[]int32{543}, []int32{590}, []uint32{543, 561, 562, 83333}},
		{[]int32{1239}, nil, []uint32{1239, 1385, 91061}},
		{[]int32{561, 1385}, []int32{-5}, []uint32{561, 562, 1385, 83333}},
		// Skipping a taxon keeps its descendants.
		{[]int32{543}, []int32{562}, []uint32{543, 561, 590, 83333}},
		{nil, nil, nil},
		{[]int32{424242}, nil, nil},
	}
	for idx, test := range cases {
		test := test
		t.Run(fmt.Sprintf("case%03d", idx), func(t *testing.T) {
			got := Filter(db, test.include, test.skip)
			if test.want == nil {
				require.True(t, got.IsEmpty())
				return
			}
			require.Equal(t, test.want, got.ToArray())
		})
	}
}

func TestIncludedIndex(t *testing.T) {
	t.Parallel()

	set := Filter(testDB(t), []int32{543}, nil)
	idx, err := IncludedIndex(set, bplus.WithOrder(3))
	require.NoError(t, err)
	require.Equal(t, int(set.GetCardinality()), idx.Len())
	require.Equal(t, []int32{543, 561, 562, 590, 83333}, idx.Keys())

	v, ok := idx.Find(590)
	require.True(t, ok)
	require.Equal(t, int32(590), v)
}
