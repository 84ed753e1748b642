// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package taxonomy keeps taxon payloads in a bplus index keyed by taxon id
// and resolves their lineages.
package taxonomy

import (
	"fmt"

	bplus "github.com/absolutelightning/go-bplus-index"
)

// RootID is the id of the taxonomy root. Lineages stop below it.
const RootID int32 = 1

// Taxon is one node of the taxonomy.
type Taxon struct {
	ID       int32
	ParentID int32
	Name     string
	Rank     string
}

// DB indexes taxa by id.
type DB = *bplus.Tree[int32, *Taxon]

// NewDB builds an empty taxonomy index.
func NewDB(opts ...bplus.Option) (DB, error) {
	return bplus.New[int32, *Taxon](opts...)
}

// Index stores the taxon in db under its id. It returns false when the id
// is already present, in which case db does not keep t.
func (t *Taxon) Index(db DB) bool {
	return db.Insert(t.ID, t)
}

// Destroy drops the strings held by the taxon.
func (t *Taxon) Destroy() {
	t.Name = ""
	t.Rank = ""
}

func (t *Taxon) String() string {
	return fmt.Sprintf("%d\t%d\t%s\t%s", t.ID, t.ParentID, t.Name, t.Rank)
}
