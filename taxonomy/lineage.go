// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package taxonomy

// MaxLineageDepth bounds a lineage walk so a parent cycle cannot loop
// forever.
const MaxLineageDepth = 64

// Lineage returns the ids from id upward, id first. The walk stops at a
// taxon whose parent is the root, at the first parent missing from db, or
// after MaxLineageDepth ids. An id missing from db has no lineage.
func Lineage(db DB, id int32) []int32 {
	tax, ok := db.Find(id)
	if !ok {
		return nil
	}
	lineage := []int32{tax.ID}
	for tax.ParentID != RootID && len(lineage) < MaxLineageDepth {
		parent, ok := db.Find(tax.ParentID)
		if !ok {
			break
		}
		lineage = append(lineage, parent.ID)
		tax = parent
	}
	return lineage
}
