// dao/event_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	ed_neo4j "github.com/dev-mohitbeniwal/eventdesk/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

type EventDAO struct {
	Graph db.Graph
}

func NewEventDAO(graph db.Graph) *EventDAO {
	return &EventDAO{Graph: graph}
}

// finish logs the outcome of a DAO call and returns err unchanged.
func finish(op string, start time.Time, err error, fields ...zap.Field) error {
	fields = append(fields, zap.Duration("duration", time.Since(start)))
	switch {
	case err == nil:
		logger.Info(op+" succeeded", fields...)
	case ed_errors.Is(err, ed_errors.ErrTransport):
		logger.Error(op+" failed", append(fields, zap.Error(err))...)
	default:
		logger.Warn(op+" rejected", append(fields, zap.Error(err))...)
	}
	return err
}

// CreateEvent stores the event with status upcoming and links it to its
// organizer with a CREATED edge.
func (dao *EventDAO) CreateEvent(ctx context.Context, event model.Event, userID int64) (*model.Event, error) {
	start := time.Now()
	logger.Info("Creating new event", zap.String("name", event.Name), zap.Int64("userID", userID))

	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		owner, err := tx.Run(ctx, `MATCH (u:User {id: $userId}) RETURN u.id AS id`, map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		if len(owner) == 0 {
			return nil, ed_errors.ErrUserNotFound
		}

		id, err := nextID(ctx, tx, ed_neo4j.LabelEvent)
		if err != nil {
			return nil, err
		}

		records, err := tx.Run(ctx, `
        MATCH (u:User {id: $userId})
        CREATE (u)-[:CREATED]->(e:Event)
        SET e = $props
        RETURN e, u.id AS createdBy
        `, map[string]any{
			"userId": userID,
			"props": map[string]any{
				ed_neo4j.AttrID:                   id,
				ed_neo4j.AttrName:                 event.Name,
				ed_neo4j.AttrDescription:          event.Description,
				ed_neo4j.AttrImageBase64:          event.ImageBase64,
				ed_neo4j.AttrDateTime:             helper_util.FormatTime(event.DateTime),
				ed_neo4j.AttrCategory:             event.Category,
				ed_neo4j.AttrLocation:             event.Location,
				ed_neo4j.AttrStatus:               string(model.EventUpcoming),
				ed_neo4j.AttrInvitationTemplateID: int64(0),
			},
		})
		if err != nil {
			return nil, err
		}
		return singleEvent(records)
	})
	if err != nil {
		return nil, finish("Create event", start, err, zap.Int64("userID", userID))
	}
	created := result.(*model.Event)
	finish("Create event", start, nil, zap.Int64("eventID", created.ID), zap.Int64("userID", userID))
	return created, nil
}

func (dao *EventDAO) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event {id: $id})
        OPTIONAL MATCH (u:User)-[:CREATED]->(e)
        RETURN e, u.id AS createdBy
        `, map[string]any{"id": eventID})
		if err != nil {
			return nil, err
		}
		return singleEvent(records)
	})
	if err != nil {
		return nil, finish("Get event", start, err, zap.Int64("eventID", eventID))
	}
	logger.Debug("Event retrieved successfully",
		zap.Int64("eventID", eventID),
		zap.Duration("duration", time.Since(start)))
	return result.(*model.Event), nil
}

// GetEventByForm resolves the event owning a form.
func (dao *EventDAO) GetEventByForm(ctx context.Context, formID int64) (*model.Event, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event)-[:HAS_FORM]->(:Form {id: $formId})
        OPTIONAL MATCH (u:User)-[:CREATED]->(e)
        RETURN e, u.id AS createdBy
        `, map[string]any{"formId": formID})
		if err != nil {
			return nil, err
		}
		return singleEvent(records)
	})
	if err != nil {
		return nil, finish("Get event by form", start, err, zap.Int64("formID", formID))
	}
	return result.(*model.Event), nil
}

// ListEventsByUser returns the events the user organizes.
func (dao *EventDAO) ListEventsByUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	return dao.listEvents(ctx, "List organized events", `
    MATCH (u:User {id: $userId})-[:CREATED]->(e:Event)
    RETURN e, u.id AS createdBy
    ORDER BY e.dateTime, e.id
    `, userID)
}

// ListStaffEvents returns the events the user is staff for.
func (dao *EventDAO) ListStaffEvents(ctx context.Context, userID int64) ([]*model.Event, error) {
	return dao.listEvents(ctx, "List staff events", `
    MATCH (:User {id: $userId})-[:STAFF_FOR]->(e:Event)
    OPTIONAL MATCH (u:User)-[:CREATED]->(e)
    RETURN e, u.id AS createdBy
    ORDER BY e.dateTime, e.id
    `, userID)
}

func (dao *EventDAO) listEvents(ctx context.Context, op, query string, userID int64) ([]*model.Event, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		events := make([]*model.Event, 0, len(records))
		for _, record := range records {
			event, err := recordEvent(record)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
		return events, nil
	})
	if err != nil {
		return nil, finish(op, start, err, zap.Int64("userID", userID))
	}
	events := result.([]*model.Event)
	logger.Info(op+" succeeded",
		zap.Int64("userID", userID),
		zap.Int("count", len(events)),
		zap.Duration("duration", time.Since(start)))
	return events, nil
}

// UpdateEvent overwrites every descriptive field with the patch. Status,
// organizer and form pointer are untouched.
func (dao *EventDAO) UpdateEvent(ctx context.Context, eventID int64, patch model.EventPatch) (*model.Event, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event {id: $id})
        SET e += $props
        WITH e
        OPTIONAL MATCH (u:User)-[:CREATED]->(e)
        RETURN e, u.id AS createdBy
        `, map[string]any{
			"id": eventID,
			"props": map[string]any{
				ed_neo4j.AttrName:        patch.Name,
				ed_neo4j.AttrDescription: patch.Description,
				ed_neo4j.AttrImageBase64: patch.ImageBase64,
				ed_neo4j.AttrDateTime:    helper_util.FormatTime(patch.DateTime),
				ed_neo4j.AttrCategory:    patch.Category,
				ed_neo4j.AttrLocation:    patch.Location,
			},
		})
		if err != nil {
			return nil, err
		}
		return singleEvent(records)
	})
	if err != nil {
		return nil, finish("Update event", start, err, zap.Int64("eventID", eventID))
	}
	finish("Update event", start, nil, zap.Int64("eventID", eventID))
	return result.(*model.Event), nil
}

// UpdateStatus accepts any of the known statuses regardless of the current
// one.
func (dao *EventDAO) UpdateStatus(ctx context.Context, eventID int64, status model.EventStatus) error {
	start := time.Now()
	if _, ok := model.ParseEventStatus(string(status)); !ok {
		return finish("Update event status", start, ed_errors.ErrInvalidEventStatus, zap.String("status", string(status)))
	}
	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event {id: $id})
        SET e.status = $status
        RETURN e.id AS id
        `, map[string]any{"id": eventID, "status": string(status)})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrEventNotFound
		}
		return nil, nil
	})
	return finish("Update event status", start, err, zap.Int64("eventID", eventID), zap.String("status", string(status)))
}

// DeleteEvent removes the event together with its form and participant
// data. Unless the event is finished, it refuses while any participant has
// been invited. The check and the cascade run in one transaction.
func (dao *EventDAO) DeleteEvent(ctx context.Context, eventID int64) (*model.EventDeletion, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event {id: $id})
        OPTIONAL MATCH (e)-[:HAS_FORM]->(f:Form)
        OPTIONAL MATCH (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
        RETURN e.status AS status,
               coalesce(f.id, 0) AS formId,
               count(p) AS participants,
               sum(CASE WHEN p.invited = true THEN 1 ELSE 0 END) AS invited
        `, map[string]any{"id": eventID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrEventNotFound
		}

		deletion := &model.EventDeletion{}
		finished := false
		var invited int64
		for _, record := range records {
			status, _ := record.Get("status")
			if s, _ := status.(string); model.EventStatus(s) == model.EventFinished {
				finished = true
			}
			if formID := recordInt64(record, "formId"); formID != 0 {
				deletion.FormID = formID
			}
			deletion.Participants += recordInt64(record, "participants")
			invited += recordInt64(record, "invited")
		}
		if !finished && invited > 0 {
			return nil, ed_errors.ErrInvitationsSent
		}

		if _, err := tx.Run(ctx, `
        MATCH (e:Event {id: $id})
        OPTIONAL MATCH (e)-[:HAS_FORM]->(f:Form)
        OPTIONAL MATCH (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
        WITH e, f, collect(p) AS participants
        FOREACH (x IN participants | DETACH DELETE x)
        DETACH DELETE f, e
        `, map[string]any{"id": eventID}); err != nil {
			return nil, err
		}
		return deletion, nil
	})
	if err != nil {
		return nil, finish("Delete event", start, err, zap.Int64("eventID", eventID))
	}
	deletion := result.(*model.EventDeletion)
	finish("Delete event", start, nil,
		zap.Int64("eventID", eventID),
		zap.Int64("formID", deletion.FormID),
		zap.Int64("participants", deletion.Participants))
	return deletion, nil
}

func singleEvent(records []*neo4j.Record) (*model.Event, error) {
	if len(records) == 0 {
		return nil, ed_errors.ErrEventNotFound
	}
	return recordEvent(records[0])
}

func recordEvent(record *neo4j.Record) (*model.Event, error) {
	node, err := recordNode(record, "e")
	if err != nil {
		return nil, err
	}
	event, err := mapNodeToEvent(node, recordInt64(record, "createdBy"))
	if err != nil {
		return nil, fmt.Errorf("failed to map event node to struct: %w", err)
	}
	return event, nil
}
