// dao/participant_dao.go
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
	"github.com/dev-mohitbeniwal/eventdesk/schema"
)

type ParticipantDAO struct {
	Graph db.Graph
}

func NewParticipantDAO(graph db.Graph) *ParticipantDAO {
	return &ParticipantDAO{Graph: graph}
}

// InsertParticipants stores already validated records under the form. The
// records were validated against form.Fields; if the stored field list no
// longer matches, nothing is written and ErrFormChanged is returned.
func (dao *ParticipantDAO) InsertParticipants(ctx context.Context, form *model.Form, records []map[string]string) ([]*model.ParticipantData, error) {
	if len(records) == 0 {
		return nil, nil
	}
	start := time.Now()
	logger.Info("Inserting participants", zap.Int64("formID", form.ID), zap.Int("count", len(records)))

	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		current, err := tx.Run(ctx, `MATCH (f:Form {id: $formId}) RETURN f`, map[string]any{"formId": form.ID})
		if err != nil {
			return nil, err
		}
		stored, err := singleForm(current)
		if err != nil {
			return nil, err
		}
		if !sameFields(stored.Fields, form.Fields) {
			return nil, ed_errors.ErrFormChanged
		}

		first, err := nextIDs(ctx, tx, ed_neo4j.LabelParticipantData, len(records))
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(records))
		for i, record := range records {
			data, err := encodeData(record)
			if err != nil {
				return nil, err
			}
			rows = append(rows, map[string]any{"id": first + int64(i), "data": data})
		}

		created, err := tx.Run(ctx, `
        MATCH (f:Form {id: $formId})
        UNWIND $rows AS row
        CREATE (f)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData {
            id: row.id, formId: $formId, data: row.data,
            invited: false, attended: false, qrCode: ''
        })
        RETURN p
        ORDER BY p.id
        `, map[string]any{"formId": form.ID, "rows": rows})
		if err != nil {
			return nil, err
		}
		return mapParticipants(created)
	})
	if err != nil {
		return nil, finish("Insert participants", start, err, zap.Int64("formID", form.ID))
	}
	participants := result.([]*model.ParticipantData)
	finish("Insert participants", start, nil, zap.Int64("formID", form.ID), zap.Int("count", len(participants)))
	return participants, nil
}

func sameFields(a, b []model.FormField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (dao *ParticipantDAO) GetParticipant(ctx context.Context, participantID int64) (*model.ParticipantData, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `MATCH (p:ParticipantData {id: $id}) RETURN p`, map[string]any{"id": participantID})
		if err != nil {
			return nil, err
		}
		participants, err := mapParticipants(records)
		if err != nil {
			return nil, err
		}
		if len(participants) == 0 {
			return nil, ed_errors.ErrParticipantNotFound
		}
		return participants[0], nil
	})
	if err != nil {
		return nil, finish("Get participant", start, err, zap.Int64("participantID", participantID))
	}
	return result.(*model.ParticipantData), nil
}

func (dao *ParticipantDAO) ListByForm(ctx context.Context, formID int64) ([]*model.ParticipantData, error) {
	return dao.list(ctx, "List participants by form", `
    MATCH (:Form {id: $id})-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
    RETURN p
    ORDER BY p.id
    `, formID)
}

func (dao *ParticipantDAO) ListByEvent(ctx context.Context, eventID int64) ([]*model.ParticipantData, error) {
	return dao.list(ctx, "List participants by event", `
    MATCH (:Event {id: $id})-[:HAS_FORM]->(:Form)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData)
    RETURN p
    ORDER BY p.id
    `, eventID)
}

func (dao *ParticipantDAO) list(ctx context.Context, op, query string, id int64) ([]*model.ParticipantData, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return mapParticipants(records)
	})
	if err != nil {
		return nil, finish(op, start, err, zap.Int64("id", id))
	}
	participants := result.([]*model.ParticipantData)
	logger.Info(op+" succeeded",
		zap.Int64("id", id),
		zap.Int("count", len(participants)),
		zap.Duration("duration", time.Since(start)))
	return participants, nil
}

// SetQrCode stores the encoded QR image. It reports false when the
// participant does not exist.
func (dao *ParticipantDAO) SetQrCode(ctx context.Context, participantID int64, qrCode string) (bool, error) {
	return dao.setFlag(ctx, "Set QR code", `
    MATCH (p:ParticipantData {id: $participantId})
    SET p.qrCode = $value
    RETURN p.id AS id
    `, map[string]any{"participantId": participantID, "value": qrCode})
}

// SetAttendance reports false unless the participant belongs to the form.
func (dao *ParticipantDAO) SetAttendance(ctx context.Context, formID, participantID int64, attended bool) (bool, error) {
	return dao.setFlag(ctx, "Set attendance", `
    MATCH (:Form {id: $formId})-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData {id: $participantId})
    SET p.attended = $value
    RETURN p.id AS id
    `, map[string]any{"formId": formID, "participantId": participantID, "value": attended})
}

func (dao *ParticipantDAO) MarkInvited(ctx context.Context, participantID int64) error {
	found, err := dao.setFlag(ctx, "Mark invited", `
    MATCH (p:ParticipantData {id: $participantId})
    SET p.invited = $value
    RETURN p.id AS id
    `, map[string]any{"participantId": participantID, "value": true})
	if err != nil {
		return err
	}
	if !found {
		return ed_errors.ErrParticipantNotFound
	}
	return nil
}

func (dao *ParticipantDAO) setFlag(ctx context.Context, op, query string, params map[string]any) (bool, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return len(records) > 0, nil
	})
	if err != nil {
		return false, finish(op, start, err, zap.Any("participantID", params["participantId"]))
	}
	found := result.(bool)
	finish(op, start, nil, zap.Any("participantID", params["participantId"]), zap.Bool("found", found))
	return found, nil
}

// UpdateData merges patch over the stored data and writes it only if the
// merged record still passes validation against the current form. The read,
// the validation and the write share one transaction.
func (dao *ParticipantDAO) UpdateData(ctx context.Context, participantID int64, patch map[string]string) (*model.ParticipantData, []schema.FieldError, error) {
	start := time.Now()
	type outcome struct {
		participant *model.ParticipantData
		errs        []schema.FieldError
	}

	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (f:Form)-[:HAS_PARTICIPANT_DATA]->(p:ParticipantData {id: $id})
        RETURN f, p
        `, map[string]any{"id": participantID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrParticipantNotFound
		}
		form, err := singleForm(records)
		if err != nil {
			return nil, err
		}
		participant, err := recordParticipant(records[0])
		if err != nil {
			return nil, err
		}

		merged := make(map[string]string, len(participant.Data)+len(patch))
		for key, value := range participant.Data {
			merged[key] = value
		}
		for key, value := range patch {
			merged[key] = value
		}
		if errs := schema.Validate(form.Fields, merged); len(errs) > 0 {
			return &outcome{errs: errs}, nil
		}

		data, err := encodeData(merged)
		if err != nil {
			return nil, err
		}
		if _, err := tx.Run(ctx, `
        MATCH (p:ParticipantData {id: $id})
        SET p.data = $data
        `, map[string]any{"id": participantID, "data": data}); err != nil {
			return nil, err
		}
		participant.Data = merged
		return &outcome{participant: participant}, nil
	})
	if err != nil {
		return nil, nil, finish("Update participant data", start, err, zap.Int64("participantID", participantID))
	}
	out := result.(*outcome)
	finish("Update participant data", start, nil,
		zap.Int64("participantID", participantID),
		zap.Int("fieldErrors", len(out.errs)))
	return out.participant, out.errs, nil
}

// RemoveParticipant is idempotent: deleting a missing participant succeeds.
func (dao *ParticipantDAO) RemoveParticipant(ctx context.Context, participantID int64) error {
	start := time.Now()
	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		return tx.Run(ctx, `
        MATCH (p:ParticipantData {id: $id})
        DETACH DELETE p
        `, map[string]any{"id": participantID})
	})
	return finish("Remove participant", start, err, zap.Int64("participantID", participantID))
}

func mapParticipants(records []*neo4j.Record) ([]*model.ParticipantData, error) {
	participants := make([]*model.ParticipantData, 0, len(records))
	for _, record := range records {
		participant, err := recordParticipant(record)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	return participants, nil
}

func recordParticipant(record *neo4j.Record) (*model.ParticipantData, error) {
	node, err := recordNode(record, "p")
	if err != nil {
		return nil, err
	}
	participant, err := mapNodeToParticipant(node)
	if err != nil {
		return nil, fmt.Errorf("failed to map participant node to struct: %w", err)
	}
	return participant, nil
}
