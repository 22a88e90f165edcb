package dao

import (
	"testing"

	"github.com/stretchr/testify/mock"

	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
)

func newTestGraph(t *testing.T) (*mocks.Graph, *mocks.MockTx) {
	t.Helper()
	tx := &mocks.MockTx{}
	t.Cleanup(func() { tx.AssertExpectations(t) })
	return &mocks.Graph{Tx: tx}, tx
}

// expectSequence answers the id allocation for label with the last id of the
// reserved block.
func expectSequence(tx *mocks.MockTx, label string, last int64) *mock.Call {
	return tx.On("Run", mocks.Query("MERGE (s:Sequence"), mocks.Params(map[string]any{"name": label})).
		Return(mocks.Records(mocks.Record("last", last)), nil).Once()
}

func formNode(id, eventID int64, fields string) map[string]any {
	return map[string]any{"id": id, "eventId": eventID, "fields": fields}
}

const emailPhoneFields = `[{"name":"Email","type":"email"},{"name":"Phone","type":"phone"}]`
