package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/eventdesk/util"
)

func TestSubscribe_CountsDomainEvents(t *testing.T) {
	bus := util.NewEventBus()
	Subscribe(bus)

	accepted := testutil.ToFloat64(ParticipantRowsTotal.WithLabelValues("accepted"))
	rejected := testutil.ToFloat64(ParticipantRowsTotal.WithLabelValues("rejected"))
	added := testutil.ToFloat64(DomainEventsTotal.WithLabelValues(util.ParticipantsAdded))
	sent := testutil.ToFloat64(InvitationsTotal.WithLabelValues("sent"))

	ctx := context.Background()
	bus.Publish(ctx, util.ParticipantsAdded, 4)
	bus.Publish(ctx, util.ParticipantsRejected, 2)
	bus.Publish(ctx, util.InvitationSent, int64(10003))
	bus.Wait()

	assert.Equal(t, accepted+4, testutil.ToFloat64(ParticipantRowsTotal.WithLabelValues("accepted")))
	assert.Equal(t, rejected+2, testutil.ToFloat64(ParticipantRowsTotal.WithLabelValues("rejected")))
	assert.Equal(t, added+1, testutil.ToFloat64(DomainEventsTotal.WithLabelValues(util.ParticipantsAdded)))
	assert.Equal(t, sent+1, testutil.ToFloat64(InvitationsTotal.WithLabelValues("sent")))
}

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("unmatched", "GET", "404"))
	ObserveRequest("", "GET", 404, 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("unmatched", "GET", "404")))
}
