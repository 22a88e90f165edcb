// dao/staff_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

type StaffDAO struct {
	Graph db.Graph
}

func NewStaffDAO(graph db.Graph) *StaffDAO {
	return &StaffDAO{Graph: graph}
}

// AssignStaff links the user to the event as staff. The user must accept
// staff assignments at the time of the call; assigning twice leaves one edge.
func (dao *StaffDAO) AssignStaff(ctx context.Context, eventID, userID int64) error {
	start := time.Now()
	params := map[string]any{"eventId": eventID, "userId": userID}
	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (u:User {id: $userId})
        OPTIONAL MATCH (e:Event {id: $eventId})
        RETURN coalesce(u.canBeStaff, true) AS canBeStaff, e IS NOT NULL AS eventExists
        `, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrUserNotFound
		}
		if !recordBool(records[0], "eventExists") {
			return nil, ed_errors.ErrEventNotFound
		}
		if !recordBool(records[0], "canBeStaff") {
			return nil, ed_errors.ErrUserCannotBeStaff
		}

		return tx.Run(ctx, `
        MATCH (u:User {id: $userId}), (e:Event {id: $eventId})
        MERGE (u)-[:STAFF_FOR]->(e)
        `, params)
	})
	return finish("Assign staff", start, err, zap.Int64("eventID", eventID), zap.Int64("userID", userID))
}

// RemoveStaff deletes the staff edge if there is one.
func (dao *StaffDAO) RemoveStaff(ctx context.Context, eventID, userID int64) error {
	start := time.Now()
	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		return tx.Run(ctx, `
        MATCH (:User {id: $userId})-[r:STAFF_FOR]->(:Event {id: $eventId})
        DELETE r
        `, map[string]any{"eventId": eventID, "userId": userID})
	})
	return finish("Remove staff", start, err, zap.Int64("eventID", eventID), zap.Int64("userID", userID))
}

func (dao *StaffDAO) IsStaff(ctx context.Context, eventID, userID int64) (bool, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (:User {id: $userId})-[r:STAFF_FOR]->(:Event {id: $eventId})
        RETURN count(r) AS edges
        `, map[string]any{"eventId": eventID, "userId": userID})
		if err != nil {
			return nil, err
		}
		return len(records) > 0 && recordInt64(records[0], "edges") > 0, nil
	})
	if err != nil {
		return false, finish("Check staff", start, err, zap.Int64("eventID", eventID), zap.Int64("userID", userID))
	}
	return result.(bool), nil
}

func (dao *StaffDAO) ListStaff(ctx context.Context, eventID int64) ([]*model.User, error) {
	return dao.listUsers(ctx, "List staff", `
    MATCH (u:User)-[:STAFF_FOR]->(:Event {id: $eventId})
    RETURN u
    ORDER BY u.name, u.id
    `, map[string]any{"eventId": eventID})
}

// FindCandidates returns users accepting staff assignments whose email
// contains emailPart, ignoring case.
func (dao *StaffDAO) FindCandidates(ctx context.Context, emailPart string, limit int) ([]*model.User, error) {
	return dao.listUsers(ctx, "Find staff candidates", `
    MATCH (u:User)
    WHERE coalesce(u.canBeStaff, true) = true
      AND toLower(u.email) CONTAINS toLower($emailPart)
    RETURN u
    ORDER BY u.email
    LIMIT $limit
    `, map[string]any{"emailPart": emailPart, "limit": int64(limit)})
}

func (dao *StaffDAO) listUsers(ctx context.Context, op, query string, params map[string]any) ([]*model.User, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		users := make([]*model.User, 0, len(records))
		for _, record := range records {
			user, err := singleUser([]*neo4j.Record{record})
			if err != nil {
				return nil, err
			}
			users = append(users, user)
		}
		return users, nil
	})
	if err != nil {
		return nil, finish(op, start, err)
	}
	users := result.([]*model.User)
	finish(op, start, nil, zap.Int("count", len(users)))
	return users, nil
}

// ToggleCanBeStaff flips the user's availability for staff assignments and
// returns the new value. Existing staff edges are kept.
func (dao *StaffDAO) ToggleCanBeStaff(ctx context.Context, userID int64) (bool, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (u:User {id: $userId})
        SET u.canBeStaff = NOT coalesce(u.canBeStaff, true)
        RETURN u.canBeStaff AS canBeStaff
        `, map[string]any{"userId": userID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrUserNotFound
		}
		return recordBool(records[0], "canBeStaff"), nil
	})
	if err != nil {
		return false, finish("Toggle staff availability", start, err, zap.Int64("userID", userID))
	}
	canBeStaff := result.(bool)
	finish("Toggle staff availability", start, nil, zap.Int64("userID", userID), zap.Bool("canBeStaff", canBeStaff))
	return canBeStaff, nil
}
