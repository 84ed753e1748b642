// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package taxonomy

import (
	"fmt"
	"strings"
)

// RankHeader names the columns of a RankLine.
const RankHeader = "strain\tspecies\tgenus\tfamily\torder\tclass\tphylum\tsuperkingdom"

var rankColumns = [...]string{
	"no rank",
	"species",
	"genus",
	"family",
	"order",
	"class",
	"phylum",
	"superkingdom",
}

// RankCell is one filled column. The zero value is an empty column.
type RankCell struct {
	ID   int32
	Name string
}

func (c RankCell) String() string {
	if c.Name == "" && c.ID == 0 {
		return ""
	}
	return fmt.Sprintf("%s (%d)", c.Name, c.ID)
}

// RankLine holds one taxon per reported rank, in RankHeader order.
type RankLine [len(rankColumns)]RankCell

// RankIndex returns the column for rank, or -1 when the rank is not
// reported. "no rank" maps to the strain column only when useNoRank is set.
func RankIndex(rank string, useNoRank bool) int {
	for i, r := range rankColumns {
		if r != rank {
			continue
		}
		if i == 0 && !useNoRank {
			return -1
		}
		return i
	}
	return -1
}

// String renders the line tab separated, matching RankHeader.
func (l RankLine) String() string {
	cells := make([]string, len(l))
	for i, c := range l {
		cells[i] = c.String()
	}
	return strings.Join(cells, "\t")
}
