// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

// Domain events published by the services after a successful mutation.
const (
	EventCreated            = "event.created"
	EventUpdated            = "event.updated"
	EventDeleted            = "event.deleted"
	FormCreated             = "form.created"
	FormUpdated             = "form.updated"
	FormDeleted             = "form.deleted"
	ParticipantsAdded       = "participants.added"
	ParticipantsRejected    = "participants.rejected"
	ParticipantUpdated      = "participant.updated"
	ParticipantRemoved      = "participant.removed"
	ParticipantCheckedIn    = "participant.checked_in"
	InvitationSent          = "invitation.sent"
	InvitationFailed        = "invitation.failed"
	StaffAssigned           = "staff.assigned"
	StaffRemoved            = "staff.removed"
	UserRegistered          = "user.registered"
	UserPasswordResetIssued = "user.password_reset_issued"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

type subscription struct {
	id      int
	handler EventHandler
}

// EventBus fans published events out to subscribers, each handler on its own
// goroutine. Handler errors are drained by the goroutine started with Start.
type EventBus struct {
	subscribers map[string][]subscription
	nextID      int
	mu          sync.RWMutex
	inflight    sync.WaitGroup
	errorChan   chan error
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]subscription),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe registers handler for eventType and returns an id for Unsubscribe.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) int {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	eb.subscribers[eventType] = append(eb.subscribers[eventType], subscription{id: eb.nextID, handler: handler})
	return eb.nextID
}

// Publish sends an event to all subscribers. A nil bus drops the event.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	if eb == nil {
		return
	}

	eb.mu.RLock()
	subs := append([]subscription(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	// Handlers outlive the request that published the event.
	ctx = context.WithoutCancel(ctx)
	for _, sub := range subs {
		eb.inflight.Add(1)
		go func(h EventHandler) {
			defer eb.inflight.Done()
			if err := h(ctx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(sub.handler)
	}
}

// Start begins processing events and handling errors
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

// Wait blocks until every handler started so far has returned.
func (eb *EventBus) Wait() {
	eb.inflight.Wait()
}

// Unsubscribe removes the subscription with the given id.
func (eb *EventBus) Unsubscribe(eventType string, id int) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			eb.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}
