// test/mock/graph.go
package mock

import (
	"context"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/eventdesk/db"
)

// MockTx is a mock implementation of db.Tx. Expectations match on the
// statement text and the parameter map.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	args := m.Called(cypher, params)
	var records []*neo4j.Record
	if v := args.Get(0); v != nil {
		records = v.([]*neo4j.Record)
	}
	return records, args.Error(1)
}

// Graph runs every unit of work directly against Tx and counts the
// transactions it was asked to open.
type Graph struct {
	Tx        db.Tx
	Reads     int
	Writes    int
	CommitErr error
	Closed    bool
}

var _ db.Graph = &Graph{}

func (g *Graph) ExecuteRead(ctx context.Context, work db.TxWork) (any, error) {
	g.Reads++
	return work(ctx, g.Tx)
}

// ExecuteWrite fails with CommitErr after the work succeeded, as a failed
// commit would.
func (g *Graph) ExecuteWrite(ctx context.Context, work db.TxWork) (any, error) {
	g.Writes++
	result, err := work(ctx, g.Tx)
	if err != nil {
		return nil, err
	}
	if g.CommitErr != nil {
		return nil, g.CommitErr
	}
	return result, nil
}

func (g *Graph) VerifyConnectivity(ctx context.Context) error { return nil }

func (g *Graph) Close(ctx context.Context) error {
	g.Closed = true
	return nil
}

// Query matches any statement containing fragment.
func Query(fragment string) any {
	return mock.MatchedBy(func(cypher string) bool {
		return strings.Contains(cypher, fragment)
	})
}

// Params matches a parameter map holding every given key with an equal value.
func Params(expected map[string]any) any {
	return mock.MatchedBy(func(params map[string]any) bool {
		for key, want := range expected {
			got, ok := params[key]
			if !ok || !assert.ObjectsAreEqual(want, got) {
				return false
			}
		}
		return true
	})
}

// Record builds a result row from alternating key, value arguments.
func Record(kv ...any) *neo4j.Record {
	record := &neo4j.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		record.Keys = append(record.Keys, kv[i].(string))
		record.Values = append(record.Values, kv[i+1])
	}
	return record
}

func Records(records ...*neo4j.Record) []*neo4j.Record {
	return records
}

func Node(label string, props map[string]any) neo4j.Node {
	return neo4j.Node{Labels: []string{label}, Props: props}
}
