// dao/user_dao.go
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

type UserDAO struct {
	Graph db.Graph
}

func NewUserDAO(graph db.Graph) *UserDAO {
	return &UserDAO{Graph: graph}
}

// CreateUser stores a new account. The email lookup and the insert share
// one write transaction.
func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))

	result, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		existing, err := tx.Run(ctx, `
        MATCH (u:User {email: $email})
        RETURN u.id AS id
        LIMIT 1
        `, map[string]any{"email": user.Email})
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, ed_errors.ErrUserConflict
		}

		id, err := nextID(ctx, tx, ed_neo4j.LabelUser)
		if err != nil {
			return nil, err
		}

		records, err := tx.Run(ctx, `
        CREATE (u:User)
        SET u = $props
        RETURN u
        `, map[string]any{"props": map[string]any{
			ed_neo4j.AttrID:                    id,
			ed_neo4j.AttrName:                  user.Name,
			ed_neo4j.AttrEmail:                 user.Email,
			ed_neo4j.AttrPasswordHash:          user.PasswordHash,
			ed_neo4j.AttrCanBeStaff:            user.CanBeStaff,
			ed_neo4j.AttrIsEmailConfirmed:      user.IsEmailConfirmed,
			ed_neo4j.AttrEmailConfirmationCode: user.EmailConfirmationCode,
			ed_neo4j.AttrPasswordResetToken:    "",
			ed_neo4j.AttrPasswordResetAttempts: 0,
		}})
		if err != nil {
			return nil, err
		}
		return singleUser(records)
	})

	duration := time.Since(start)
	if ed_errors.Is(err, ed_errors.ErrConstraintViolation) {
		// A concurrent registration won the unique_user_email constraint.
		err = fmt.Errorf("%w: %v", ed_errors.ErrUserConflict, err)
	}
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.Duration("duration", duration))
		return nil, err
	}

	created := result.(*model.User)
	logger.Info("User created successfully",
		zap.Int64("userID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return dao.findUser(ctx, "id", `MATCH (u:User {id: $value}) RETURN u`, userID)
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return dao.findUser(ctx, "email", `MATCH (u:User {email: $value}) RETURN u`, email)
}

func (dao *UserDAO) GetUserByConfirmationCode(ctx context.Context, code string) (*model.User, error) {
	if code == "" {
		return nil, ed_errors.ErrConfirmationNotFound
	}
	user, err := dao.findUser(ctx, "confirmationCode", `MATCH (u:User {emailConfirmationCode: $value}) RETURN u`, code)
	if ed_errors.Is(err, ed_errors.ErrUserNotFound) {
		return nil, ed_errors.ErrConfirmationNotFound
	}
	return user, err
}

func (dao *UserDAO) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ed_errors.ErrResetTokenNotFound
	}
	user, err := dao.findUser(ctx, "resetToken", `MATCH (u:User {passwordResetToken: $value}) RETURN u`, token)
	if ed_errors.Is(err, ed_errors.ErrUserNotFound) {
		return nil, ed_errors.ErrResetTokenNotFound
	}
	return user, err
}

func (dao *UserDAO) findUser(ctx context.Context, by, query string, value any) (*model.User, error) {
	start := time.Now()
	result, err := dao.Graph.ExecuteRead(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, query, map[string]any{"value": value})
		if err != nil {
			return nil, err
		}
		return singleUser(records)
	})
	if err != nil {
		if ed_errors.Is(err, ed_errors.ErrUserNotFound) {
			logger.Warn("User not found",
				zap.String("by", by),
				zap.Duration("duration", time.Since(start)))
		} else {
			logger.Error("Failed to retrieve user",
				zap.Error(err),
				zap.String("by", by),
				zap.Duration("duration", time.Since(start)))
		}
		return nil, err
	}
	user := result.(*model.User)
	logger.Debug("User retrieved successfully",
		zap.Int64("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return user, nil
}

func (dao *UserDAO) ConfirmEmail(ctx context.Context, userID int64) error {
	return dao.setProps(ctx, "confirm email", userID, map[string]any{
		ed_neo4j.AttrIsEmailConfirmed:      true,
		ed_neo4j.AttrEmailConfirmationCode: "",
	})
}

// SetPasswordReset stores a freshly issued reset token together with the
// request time and attempt counter.
func (dao *UserDAO) SetPasswordReset(ctx context.Context, userID int64, token string, requestedAt time.Time, attempts int) error {
	return dao.setProps(ctx, "set password reset", userID, map[string]any{
		ed_neo4j.AttrPasswordResetToken:       token,
		ed_neo4j.AttrPasswordResetRequestedAt: helper_util.FormatTime(requestedAt),
		ed_neo4j.AttrPasswordResetAttempts:    attempts,
	})
}

// UpdatePassword replaces the hash and clears any pending reset.
func (dao *UserDAO) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return dao.setProps(ctx, "update password", userID, map[string]any{
		ed_neo4j.AttrPasswordHash:             passwordHash,
		ed_neo4j.AttrPasswordResetToken:       "",
		ed_neo4j.AttrPasswordResetRequestedAt: "",
		ed_neo4j.AttrPasswordResetAttempts:    0,
	})
}

func (dao *UserDAO) UpdateName(ctx context.Context, userID int64, name string) error {
	return dao.setProps(ctx, "update name", userID, map[string]any{ed_neo4j.AttrName: name})
}

func (dao *UserDAO) setProps(ctx context.Context, op string, userID int64, props map[string]any) error {
	start := time.Now()
	logger.Info("Updating user", zap.String("op", op), zap.Int64("userID", userID))

	_, err := dao.Graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (u:User {id: $id})
        SET u += $props
        RETURN u.id AS id
        `, map[string]any{"id": userID, "props": props})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ed_errors.ErrUserNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update user",
			zap.Error(err),
			zap.String("op", op),
			zap.Int64("userID", userID),
			zap.Duration("duration", duration))
		return err
	}
	logger.Info("User updated successfully",
		zap.String("op", op),
		zap.Int64("userID", userID),
		zap.Duration("duration", duration))
	return nil
}

func singleUser(records []*neo4j.Record) (*model.User, error) {
	if len(records) == 0 {
		return nil, ed_errors.ErrUserNotFound
	}
	node, err := recordNode(records[0], "u")
	if err != nil {
		return nil, err
	}
	user, err := mapNodeToUser(node)
	if err != nil {
		return nil, fmt.Errorf("failed to map user node to struct: %w", err)
	}
	return user, nil
}
