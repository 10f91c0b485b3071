// Package notify fans call activity out to the owner over SMS and email.
package notify

//go:generate go run go.uber.org/mock/mockgen@latest -source=notify.go -destination=mocks_test.go -package=notify

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/mclovin84/callscreen/internal/observability"
)

// Transcripts are clipped before they go into a text message.
const maxTranscriptChars = 300

// SMSSender delivers a text message to one recipient.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// EmailSender delivers an HTML email and returns the provider's message id.
type EmailSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// Service sends owner notifications over the configured channels. A nil
// sender disables its channel, and delivery failures are logged and
// swallowed so a notification can never fail the call that triggered it.
type Service struct {
	sms         SMSSender
	email       EmailSender
	ownerNumber string
	fromEmail   string
	ownerEmail  string
	logger      *observability.Logger
}

func New(sms SMSSender, email EmailSender, ownerNumber, fromEmail, ownerEmail string, logger *observability.Logger) *Service {
	return &Service{
		sms:         sms,
		email:       email,
		ownerNumber: ownerNumber,
		fromEmail:   fromEmail,
		ownerEmail:  ownerEmail,
		logger:      logger,
	}
}

// CallScreened texts the owner a one-line screening summary.
func (s *Service) CallScreened(ctx context.Context, from, callerName, decision, reason string) {
	body := fmt.Sprintf("Call from %s screened: %s.", from, decision)
	if callerName != "" {
		body += fmt.Sprintf(" Caller: %s.", callerName)
	}
	if reason != "" {
		body += fmt.Sprintf(" Reason: %s", reason)
	}
	s.sendSMS(ctx, body)
}

// VoicemailReceived alerts the owner that a voicemail was left, over SMS and,
// when configured, email with a link to the recording.
func (s *Service) VoicemailReceived(ctx context.Context, from, recordingURL, transcript string) {
	body := fmt.Sprintf("New voicemail from %s.", from)
	if transcript != "" {
		body += fmt.Sprintf(" Transcript: %s", truncate(transcript, maxTranscriptChars))
	}
	if recordingURL != "" {
		body += fmt.Sprintf(" Listen: %s", recordingURL)
	}
	s.sendSMS(ctx, body)

	if s.email == nil || s.ownerEmail == "" {
		return
	}
	subject := fmt.Sprintf("New voicemail from %s", from)
	html := fmt.Sprintf("<p>New voicemail from %s.</p>", from)
	if transcript != "" {
		html += fmt.Sprintf("<p>Transcript: %s</p>", transcript)
	}
	if recordingURL != "" {
		html += fmt.Sprintf("<p><a href=%q>Listen to the recording</a></p>", recordingURL)
	}
	if _, err := s.email.SendEmail(ctx, s.fromEmail, s.ownerEmail, subject, html); err != nil {
		s.logger.Error(ctx, "failed to send voicemail email", err)
	}
}

func (s *Service) sendSMS(ctx context.Context, body string) {
	if s.sms == nil || s.ownerNumber == "" {
		return
	}
	if err := s.sms.SendSMS(ctx, s.ownerNumber, body); err != nil {
		s.logger.Error(ctx, "failed to send owner sms", err)
	}
}

// truncate clips s to at most max bytes, backing up to a rune boundary so a
// multi-byte character is never split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
