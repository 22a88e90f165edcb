// metrics/metrics.go

package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dev-mohitbeniwal/eventdesk/util"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventdesk",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eventdesk",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	DomainEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventdesk",
		Name:      "domain_events_total",
		Help:      "Domain events published on the event bus, by type.",
	}, []string{"type"})

	ParticipantRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventdesk",
		Name:      "participant_rows_total",
		Help:      "Participant rows submitted, by outcome (accepted, rejected).",
	}, []string{"outcome"})

	InvitationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventdesk",
		Name:      "invitations_total",
		Help:      "Invitation emails, by outcome (sent, failed).",
	}, []string{"outcome"})
)

// subscribedEvents are counted in DomainEventsTotal.
var subscribedEvents = []string{
	util.EventCreated,
	util.EventUpdated,
	util.EventDeleted,
	util.FormCreated,
	util.FormUpdated,
	util.FormDeleted,
	util.ParticipantsAdded,
	util.ParticipantsRejected,
	util.ParticipantUpdated,
	util.ParticipantRemoved,
	util.ParticipantCheckedIn,
	util.InvitationSent,
	util.InvitationFailed,
	util.StaffAssigned,
	util.StaffRemoved,
	util.UserRegistered,
	util.UserPasswordResetIssued,
}

// Subscribe attaches the domain counters to bus. ParticipantsAdded and
// ParticipantsRejected carry the row count as an int payload.
func Subscribe(bus *util.EventBus) {
	for _, eventType := range subscribedEvents {
		bus.Subscribe(eventType, countEvent)
	}
	bus.Subscribe(util.ParticipantsAdded, countRows("accepted"))
	bus.Subscribe(util.ParticipantsRejected, countRows("rejected"))
	bus.Subscribe(util.InvitationSent, countInvitation("sent"))
	bus.Subscribe(util.InvitationFailed, countInvitation("failed"))
}

func countEvent(_ context.Context, e util.Event) error {
	DomainEventsTotal.WithLabelValues(e.Type).Inc()
	return nil
}

func countRows(outcome string) util.EventHandler {
	return func(_ context.Context, e util.Event) error {
		if n, ok := e.Payload.(int); ok && n > 0 {
			ParticipantRowsTotal.WithLabelValues(outcome).Add(float64(n))
		}
		return nil
	}
}

func countInvitation(outcome string) util.EventHandler {
	return func(_ context.Context, e util.Event) error {
		InvitationsTotal.WithLabelValues(outcome).Inc()
		return nil
	}
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(seconds)
}
