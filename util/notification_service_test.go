package util

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/dev-mohitbeniwal/eventdesk/config"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
)

type capturedMail struct {
	from string
	to   []string
	raw  string
}

func captureSender(out *[]capturedMail, err error) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if _, werr := msg.WriteTo(&buf); werr != nil {
			return werr
		}
		*out = append(*out, capturedMail{from: from, to: to, raw: buf.String()})
		return nil
	}
}

func TestNotificationService_SendEmail(t *testing.T) {
	var sent []capturedMail
	n := NewNotificationServiceWithSender("events@example.com", captureSender(&sent, nil))

	err := n.SendEmail(context.Background(), " guest@example.com ", "Invitation", "<p>See you there</p>", true, "")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "events@example.com", sent[0].from)
	assert.Equal(t, []string{"guest@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].raw, "Subject: Invitation")
	assert.Contains(t, sent[0].raw, "text/html")
	assert.Contains(t, sent[0].raw, "See you there")
}

func TestNotificationService_SenderOverrideAndPlainText(t *testing.T) {
	var sent []capturedMail
	n := NewNotificationServiceWithSender("events@example.com", captureSender(&sent, nil))

	err := n.SendEmail(context.Background(), "guest@example.com", "Reset", "code 42", false, "noreply@example.com")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "noreply@example.com", sent[0].from)
	assert.Contains(t, sent[0].raw, "text/plain")
}

func TestNotificationService_Failures(t *testing.T) {
	var sent []capturedMail
	n := NewNotificationServiceWithSender("events@example.com", captureSender(&sent, errors.New("connection refused")))

	err := n.SendEmail(context.Background(), "guest@example.com", "Invitation", "body", true, "")
	assert.ErrorIs(t, err, ed_errors.ErrEmailDelivery)
	assert.ErrorIs(t, err, ed_errors.ErrTransport)

	err = n.SendEmail(context.Background(), "  ", "Invitation", "body", true, "")
	assert.ErrorIs(t, err, ed_errors.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = n.SendEmail(ctx, "guest@example.com", "Invitation", "body", true, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNotificationService_Unconfigured(t *testing.T) {
	n := NewNotificationService(config.EmailConfiguration{})
	err := n.SendEmail(context.Background(), "guest@example.com", "Invitation", "body", true, "")
	assert.ErrorIs(t, err, ed_errors.ErrEmailDelivery)
}
