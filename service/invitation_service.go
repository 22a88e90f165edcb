// service/invitation_service.go
package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IInvitationService defines the interface for invitation emails
type IInvitationService interface {
	SendInvitation(ctx context.Context, participantID, formID int64, userID int64) error
	SendInvitations(ctx context.Context, eventID int64, userID int64) (int, error)
}

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 560px; margin: 0 auto; padding: 16px;">
    <p>Hello!</p>
    <p>You are invited to the event:</p>
    <ul>
      <li><strong>Name:</strong> {{.Name}}</li>
      {{- if .Description}}
      <li><strong>Description:</strong> {{.Description}}</li>
      {{- end}}
      <li><strong>Date and time:</strong> {{.DateTime}}</li>
      {{- if .Location}}
      <li><strong>Location:</strong> {{.Location}}</li>
      {{- end}}
    </ul>
    <p>Please show this QR code at the entrance:</p>
    <img src="{{.QrCode}}" alt="QR Code" width="300" height="300" />
    <p>See you there!</p>
  </div>
</body>
</html>`))

// defaultSendLimit caps the invitations mailed concurrently by a bulk send.
const defaultSendLimit = 4

type invitationView struct {
	Name        string
	Description string
	DateTime    string
	Location    string
	QrCode      template.URL
}

// InvitationService emails participants their QR code and records that they
// were invited.
type InvitationService struct {
	participantStore ParticipantStore
	formStore        FormStore
	guard            *guard
	mailer           Mailer
	eventBus         *util.EventBus
	sendLimit        int
}

var _ IInvitationService = &InvitationService{}

func NewInvitationService(participantStore ParticipantStore, formStore FormStore, eventStore EventStore, staffStore StaffStore, cacheService *util.CacheService, auditService audit.Service, mailer Mailer, eventBus *util.EventBus) *InvitationService {
	return &InvitationService{
		participantStore: participantStore,
		formStore:        formStore,
		guard:            newGuard(eventStore, formStore, staffStore, cacheService, auditService),
		mailer:           mailer,
		eventBus:         eventBus,
		sendLimit:        defaultSendLimit,
	}
}

// SendInvitation emails one participant of formID. The participant is marked
// invited only after the mail was accepted for delivery, so a failed send can
// simply be retried.
func (s *InvitationService) SendInvitation(ctx context.Context, participantID, formID int64, userID int64) error {
	participant, err := s.participantStore.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	if participant.FormID != formID {
		return ed_errors.ErrParticipantNotFound
	}

	event, err := s.guard.eventForForm(ctx, formID)
	if err != nil {
		return err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "send_invitation", entityParticipant, participantID); err != nil {
		return err
	}

	if strings.TrimSpace(participant.Email()) == "" {
		return ed_errors.ErrMissingEmail
	}
	if !hasUsableQrCode(participant) {
		return ed_errors.ErrMissingQrCode
	}

	if err := s.deliver(ctx, event, participant); err != nil {
		return err
	}

	s.guard.record(ctx, userID, "send_invitation", entityParticipant, participantID, map[string]any{"eventId": event.ID})
	logger.Info("Invitation sent",
		zap.Int64("participantID", participantID),
		zap.Int64("eventID", event.ID),
		zap.Int64("userID", userID))
	return nil
}

// SendInvitations emails every participant of the event's form that has an
// email and a usable QR code; the others are skipped. Sends run concurrently
// up to sendLimit. The first failed send cancels the ones not yet started, and
// the count of invitations that went out is returned with the error.
func (s *InvitationService) SendInvitations(ctx context.Context, eventID int64, userID int64) (int, error) {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "send_invitations", entityEvent, eventID); err != nil {
		return 0, err
	}

	form, err := s.formStore.GetFormByEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	participants, err := s.participantStore.ListByForm(ctx, form.ID)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.sendLimit)

	var sent atomic.Int64
	skipped := 0
	for _, participant := range participants {
		if strings.TrimSpace(participant.Email()) == "" || !hasUsableQrCode(participant) {
			skipped++
			continue
		}
		if gctx.Err() != nil {
			break
		}
		participant := participant
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := s.deliver(gctx, event, participant); err != nil {
				return err
			}
			sent.Add(1)
			return nil
		})
	}

	err = g.Wait()
	total := int(sent.Load())
	s.recordBulk(ctx, userID, eventID, total, skipped)
	if err != nil {
		logger.Error("Bulk invitation stopped",
			zap.Error(err),
			zap.Int64("eventID", eventID),
			zap.Int("sent", total),
			zap.Int64("userID", userID))
		return total, err
	}

	logger.Info("Invitations sent",
		zap.Int64("eventID", eventID),
		zap.Int("sent", total),
		zap.Int("skipped", skipped),
		zap.Int64("userID", userID))
	return total, nil
}

func (s *InvitationService) recordBulk(ctx context.Context, userID, eventID int64, sent, skipped int) {
	if sent == 0 {
		return
	}
	s.guard.record(ctx, userID, "send_invitations", entityEvent, eventID, map[string]any{
		"sent":    sent,
		"skipped": skipped,
	})
}

// deliver renders and sends the invitation, then marks the participant.
func (s *InvitationService) deliver(ctx context.Context, event *model.Event, participant *model.ParticipantData) error {
	body, err := renderInvitation(event, participant.QrCode)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invitation to %q", event.Name)
	if err := s.mailer.SendEmail(ctx, participant.Email(), subject, body, true, ""); err != nil {
		s.eventBus.Publish(ctx, util.InvitationFailed, participant.ID)
		logger.Error("Failed to send invitation",
			zap.Error(err),
			zap.Int64("participantID", participant.ID),
			zap.Int64("eventID", event.ID))
		return err
	}

	if err := s.participantStore.MarkInvited(ctx, participant.ID); err != nil {
		logger.Error("Invitation sent but participant not marked",
			zap.Error(err),
			zap.Int64("participantID", participant.ID))
		return err
	}
	s.eventBus.Publish(ctx, util.InvitationSent, participant.ID)
	return nil
}

// hasUsableQrCode reports whether the stored QR code can be embedded in mail.
func hasUsableQrCode(participant *model.ParticipantData) bool {
	if participant.QrCode == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(participant.QrCode)
	return err == nil
}

func renderInvitation(event *model.Event, qrCode string) (string, error) {
	if _, err := base64.StdEncoding.DecodeString(qrCode); err != nil {
		return "", fmt.Errorf("%w: stored QR code is not base64", ed_errors.ErrMissingQrCode)
	}

	var buf bytes.Buffer
	err := invitationTemplate.Execute(&buf, invitationView{
		Name:        event.Name,
		Description: event.Description,
		DateTime:    event.DateTime.UTC().Format("2006-01-02 15:04 MST"),
		Location:    event.Location,
		QrCode:      template.URL("data:image/png;base64," + qrCode),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render invitation: %w", err)
	}
	return buf.String(), nil
}
