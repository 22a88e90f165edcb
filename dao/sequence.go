// dao/sequence.go
package dao

import (
	"context"
	"fmt"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	ed_neo4j "github.com/dev-mohitbeniwal/eventdesk/model/neo4j"
)

const nextIDsQuery = `
MERGE (s:Sequence {name: $name})
ON CREATE SET s.value = $start - 1
SET s.value = s.value + $count
RETURN s.value AS last
`

// nextIDs reserves count consecutive ids for label inside tx and returns the
// first one. The sequence node is locked by the write until tx ends, so
// concurrent transactions never receive overlapping ranges.
func nextIDs(ctx context.Context, tx db.Tx, label string, count int) (int64, error) {
	if count < 1 {
		return 0, fmt.Errorf("cannot reserve %d ids", count)
	}
	records, err := tx.Run(ctx, nextIDsQuery, map[string]any{
		"name":  label,
		"start": ed_neo4j.FirstID,
		"count": count,
	})
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("sequence %s returned no value", label)
	}
	last := recordInt64(records[0], "last")
	return last - int64(count) + 1, nil
}

func nextID(ctx context.Context, tx db.Tx, label string) (int64, error) {
	return nextIDs(ctx, tx, label, 1)
}
