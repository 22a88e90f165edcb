// dao/form_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	ed_neo4j "github.com/dev-mohitbeniwal/eventdesk/model/neo4j"
)

type FormDAO struct {
	Graph db.Graph
}

func NewFormDAO(graph db.Graph) *FormDAO {
	return &FormDAO{Graph: graph}
}

// CreateForm attaches a form holding only the Email field to the event and
// points the event's invitation template at it. An event has at most one
// form; the existence check and the insert share a transaction.
func (dao *FormDAO) CreateForm(ctx context.Context, eventID int64) (*model.Form, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (e:Event {id: $eventId})
        OPTIONAL MATCH (e)-[:HAS_FORM]->(f:Form)
        RETURN e.id AS id, count(f) AS forms
        `, map[string]any{"eventId": eventID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrEventNotFound
		}
		if recordInt64(records[0], "forms") > 0 {
			return nil, ed_errors.ErrFormExists
		}

		id, err := nextID(ctx, tx, ed_neo4j.LabelForm)
		if err != nil {
			return nil, err
		}
		fields, err := encodeFields(model.DefaultFields())
		if err != nil {
			return nil, err
		}

		records, err = tx.Run(ctx, `
        MATCH (e:Event {id: $eventId})
        CREATE (e)-[:HAS_FORM]->(f:Form {id: $id, eventId: $eventId, fields: $fields})
        SET e.invitationTemplateId = $id
        RETURN f
        `, map[string]any{"eventId": eventID, "id": id, "fields": fields})
		if err != nil {
			return nil, err
		}
		return singleForm(records)
	})
	if err != nil {
		return nil, finish("Create form", start, err, zap.Int64("eventID", eventID))
	}
	form := result.(*model.Form)
	finish("Create form", start, nil, zap.Int64("eventID", eventID), zap.Int64("formID", form.ID))
	return form, nil
}

// UpdateForm replaces the field list, keeping its order. It refuses once any
// participant data exists under the form.
func (dao *FormDAO) UpdateForm(ctx context.Context, formID int64, fields []model.FormField) (*model.Form, error) {
	start := time.Now()
	encoded, err := encodeFields(fields)
	if err != nil {
		return nil, finish("Update form", start, fmt.Errorf("%w: %v", ed_errors.ErrInvalidFormSchema, err), zap.Int64("formID", formID))
	}

	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		if err := checkNoParticipants(ctx, tx, `
        MATCH (f:Form {id: $formId})
        OPTIONAL MATCH (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
        RETURN f.id AS id, count(p) AS participants
        `, map[string]any{"formId": formID}); err != nil {
			return nil, err
		}

		records, err := tx.Run(ctx, `
        MATCH (f:Form {id: $formId})
        SET f.fields = $fields
        RETURN f
        `, map[string]any{"formId": formID, "fields": encoded})
		if err != nil {
			return nil, err
		}
		return singleForm(records)
	})
	if err != nil {
		return nil, finish("Update form", start, err, zap.Int64("formID", formID))
	}
	finish("Update form", start, nil, zap.Int64("formID", formID), zap.Int("fields", len(fields)))
	return result.(*model.Form), nil
}

// DeleteForm removes a form of the given event and clears the event's
// invitation template pointer, under the same participant rule as UpdateForm.
func (dao *FormDAO) DeleteForm(ctx context.Context, formID, eventID int64) error {
	start := time.Now()
	params := map[string]any{"formId": formID, "eventId": eventID}
	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		if err := checkNoParticipants(ctx, tx, `
        MATCH (:Event {id: $eventId})-[:HAS_FORM]->(f:Form {id: $formId})
        OPTIONAL MATCH (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
        RETURN f.id AS id, count(p) AS participants
        `, params); err != nil {
			return nil, err
		}

		_, err := tx.Run(ctx, `
        MATCH (e:Event {id: $eventId})-[:HAS_FORM]->(f:Form {id: $formId})
        SET e.invitationTemplateId = 0
        DETACH DELETE f
        `, params)
		return nil, err
	})
	return finish("Delete form", start, err, zap.Int64("formID", formID), zap.Int64("eventID", eventID))
}

func checkNoParticipants(ctx context.Context, tx db.Tx, query string, params map[string]any) error {
	records, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ed_errors.ErrFormNotFound
	}
	if recordInt64(records[0], "participants") > 0 {
		return ed_errors.ErrFormHasParticipants
	}
	return nil
}

// FormHasParticipants reports whether any participant data hangs off the form.
func (dao *FormDAO) FormHasParticipants(ctx context.Context, formID int64) (bool, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (f:Form {id: $formId})
        OPTIONAL MATCH (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
        RETURN f.id AS id, count(p) AS participants
        `, map[string]any{"formId": formID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrFormNotFound
		}
		return recordInt64(records[0], "participants") > 0, nil
	})
	if err != nil {
		return false, finish("Check form participants", start, err, zap.Int64("formID", formID))
	}
	return result.(bool), nil
}

func (dao *FormDAO) GetForm(ctx context.Context, formID int64) (*model.Form, error) {
	return dao.getForm(ctx, "Get form", `MATCH (f:Form {id: $id}) RETURN f`, formID)
}

func (dao *FormDAO) GetFormByEvent(ctx context.Context, eventID int64) (*model.Form, error) {
	return dao.getForm(ctx, "Get form by event", `MATCH (:Event {id: $id})-[:HAS_FORM]->(f:Form) RETURN f`, eventID)
}

func (dao *FormDAO) getForm(ctx context.Context, op, query string, id int64) (*model.Form, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return singleForm(records)
	})
	if err != nil {
		return nil, finish(op, start, err, zap.Int64("id", id))
	}
	return result.(*model.Form), nil
}

func singleForm(records []*neo4j.Record) (*model.Form, error) {
	if len(records) == 0 {
		return nil, ed_errors.ErrFormNotFound
	}
	node, err := recordNode(records[0], "f")
	if err != nil {
		return nil, err
	}
	form, err := mapNodeToForm(node)
	if err != nil {
		return nil, fmt.Errorf("failed to map form node to struct: %w", err)
	}
	return form, nil
}
