// util/notification_service.go

package util

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/dev-mohitbeniwal/eventdesk/config"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

// NotificationService delivers mail over SMTP.
type NotificationService struct {
	sender string
	send   func(m *gomail.Message) error
}

// NewNotificationService dials the configured SMTP server once per message.
// Without an SMTP host every send fails with ErrEmailDelivery.
func NewNotificationService(cfg config.EmailConfiguration) *NotificationService {
	n := &NotificationService{sender: cfg.SenderEmail}
	if cfg.SMTPHost == "" {
		n.send = func(*gomail.Message) error {
			return fmt.Errorf("smtp host not configured")
		}
		return n
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	n.send = func(m *gomail.Message) error {
		return dialer.DialAndSend(m)
	}
	return n
}

// NewNotificationServiceWithSender delivers through an already open sender.
func NewNotificationServiceWithSender(from string, s gomail.Sender) *NotificationService {
	return &NotificationService{
		sender: from,
		send: func(m *gomail.Message) error {
			return gomail.Send(s, m)
		},
	}
}

// SendEmail sends one message. from overrides the configured sender when set.
func (n *NotificationService) SendEmail(ctx context.Context, to, subject, body string, isHTML bool, from string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("%w: empty recipient", ed_errors.ErrInvalidInput)
	}
	if from == "" {
		from = n.sender
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, body)

	if err := n.send(m); err != nil {
		logger.Error("Failed to send email",
			zap.String("recipient", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ed_errors.ErrEmailDelivery, err)
	}

	logger.Info("Email sent",
		zap.String("recipient", to),
		zap.String("subject", subject))
	return nil
}
