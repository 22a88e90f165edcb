// service/user_service.go
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/audit"
	"github.com/dev-mohitbeniwal/eventdesk/config"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IUserService defines the interface for account operations
type IUserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	ConfirmEmail(ctx context.Context, code string) (bool, error)
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	ChangeName(ctx context.Context, userID int64, name string) (*model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
}

// UserService handles registration, login and password management
type UserService struct {
	userStore      UserStore
	hasher         PasswordHasher
	tokens         TokenIssuer
	mailer         Mailer
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
	auth           config.AuthConfiguration
	now            func() time.Time
}

var _ IUserService = &UserService{}

func NewUserService(userStore UserStore, hasher PasswordHasher, tokens TokenIssuer, mailer Mailer, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus, auth config.AuthConfiguration) *UserService {
	return &UserService{
		userStore:      userStore,
		hasher:         hasher,
		tokens:         tokens,
		mailer:         mailer,
		auditService:   auditService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
		auth:           auth,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withToken(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + url.QueryEscape(token)
}

// Register creates an unconfirmed account open to staff assignments and
// mails the confirmation link. A failed confirmation mail does not undo the
// registration.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := s.validationUtil.ValidateUserName(req.Name); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	code := uuid.NewString()

	user, err := s.userStore.CreateUser(ctx, model.User{
		Name:                  strings.TrimSpace(req.Name),
		Email:                 normalizeEmail(req.Email),
		PasswordHash:          hash,
		CanBeStaff:            true,
		EmailConfirmationCode: code,
	})
	if err != nil {
		return nil, err
	}

	link := withToken(s.auth.ConfirmationURL, code)
	body := fmt.Sprintf(`<p>Welcome, %s!</p><p>Confirm your email address: <a href="%s">%s</a></p>`,
		escapeHTML(user.Name), link, link)
	if err := s.mailer.SendEmail(ctx, user.Email, "Confirm your email address", body, true, ""); err != nil {
		logger.Error("Failed to send confirmation email", zap.Error(err), zap.Int64("userID", user.ID))
	}

	s.recordUser(ctx, user.ID, "register", nil)
	s.eventBus.Publish(ctx, util.UserRegistered, user.ID)
	logger.Info("User registered", zap.Int64("userID", user.ID))
	return user, nil
}

// ConfirmEmail marks the account owning code as confirmed. It reports true
// when the account had been confirmed already.
func (s *UserService) ConfirmEmail(ctx context.Context, code string) (bool, error) {
	user, err := s.userStore.GetUserByConfirmationCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return false, err
	}
	if user.IsEmailConfirmed {
		return true, nil
	}
	if err := s.userStore.ConfirmEmail(ctx, user.ID); err != nil {
		return false, err
	}
	s.recordUser(ctx, user.ID, "confirm_email", nil)
	logger.Info("Email confirmed", zap.Int64("userID", user.ID))
	return false, nil
}

// Login returns a signed access token. Unknown emails and wrong passwords
// both fail with ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.userStore.GetUserByEmail(ctx, normalizeEmail(email))
	if ed_errors.Is(err, ed_errors.ErrUserNotFound) {
		return nil, ed_errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, ed_errors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info("Login failed", zap.Int64("userID", user.ID))
		return nil, ed_errors.ErrInvalidCredentials
	}
	if s.auth.RequireConfirmedEmail && !user.IsEmailConfirmed {
		return nil, ed_errors.ErrEmailNotConfirmed
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		logger.Error("Failed to issue token", zap.Error(err), zap.Int64("userID", user.ID))
		return nil, err
	}
	logger.Info("User logged in", zap.Int64("userID", user.ID))
	return &model.LoginResponse{Token: token, User: user}, nil
}

// RequestPasswordReset issues a new reset token and mails the reset link.
// Requests are limited by a cooldown and a lifetime attempt budget.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userStore.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	now := s.now().UTC()
	if user.PasswordResetAttempts >= s.auth.MaxResetAttempts {
		return ed_errors.ErrResetAttemptsExhausted
	}
	if user.PasswordResetRequestedAt != nil && now.Sub(*user.PasswordResetRequestedAt) < s.auth.ResetCooldown {
		return ed_errors.ErrResetTooSoon
	}

	token := uuid.NewString()
	if err := s.userStore.SetPasswordReset(ctx, user.ID, token, now, user.PasswordResetAttempts+1); err != nil {
		return err
	}

	link := withToken(s.auth.ResetURL, token)
	body := fmt.Sprintf(`<p>To reset your password follow this link (valid for %s): <a href="%s">%s</a></p>`,
		s.auth.ResetTokenTTL, link, link)
	if err := s.mailer.SendEmail(ctx, user.Email, "Password reset", body, true, ""); err != nil {
		return err
	}

	s.recordUser(ctx, user.ID, "request_password_reset", map[string]any{"attempt": user.PasswordResetAttempts + 1})
	s.eventBus.Publish(ctx, util.UserPasswordResetIssued, user.ID)
	logger.Info("Password reset issued", zap.Int64("userID", user.ID))
	return nil
}

// ResetPassword sets a new password with a reset token issued less than
// ResetTokenTTL ago.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := s.validationUtil.ValidatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.userStore.GetUserByResetToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return err
	}
	if user.PasswordResetRequestedAt == nil || s.now().UTC().Sub(*user.PasswordResetRequestedAt) > s.auth.ResetTokenTTL {
		return ed_errors.ErrResetTokenExpired
	}

	if err := s.setPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}
	s.recordUser(ctx, user.ID, "reset_password", nil)
	logger.Info("Password reset", zap.Int64("userID", user.ID))
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userStore.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := s.hasher.Compare(user.PasswordHash, currentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ed_errors.ErrInvalidCredentials
	}
	if err := s.validationUtil.ValidatePassword(newPassword); err != nil {
		return err
	}

	if err := s.setPassword(ctx, userID, newPassword); err != nil {
		return err
	}
	s.recordUser(ctx, userID, "change_password", nil)
	logger.Info("Password changed", zap.Int64("userID", userID))
	return nil
}

func (s *UserService) setPassword(ctx context.Context, userID int64, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.userStore.UpdatePassword(ctx, userID, hash)
}

func (s *UserService) ChangeName(ctx context.Context, userID int64, name string) (*model.User, error) {
	if err := s.validationUtil.ValidateUserName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if err := s.userStore.UpdateName(ctx, userID, name); err != nil {
		return nil, err
	}
	s.recordUser(ctx, userID, "change_name", map[string]any{"name": name})
	return s.userStore.GetUser(ctx, userID)
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.userStore.GetUser(ctx, userID)
}

func (s *UserService) recordUser(ctx context.Context, userID int64, op string, changes map[string]any) {
	if s.auditService == nil {
		return
	}
	err := s.auditService.LogAccess(ctx, audit.AuditLog{
		UserID:        userID,
		Action:        op,
		EntityType:    entityUser,
		EntityID:      userID,
		AccessGranted: true,
		ChangeDetails: audit.Changes(changes),
	})
	if err != nil {
		logger.Warn("Failed to write audit log", zap.Error(err), zap.String("action", op))
	}
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
