package bootstrap

import (
	"context"
	"fmt"

	"github.com/mclovin84/callscreen/internal/config"
	"github.com/mclovin84/callscreen/internal/observability"

	calllogHandler "github.com/mclovin84/callscreen/internal/calllog/handler"
	calllogProcessor "github.com/mclovin84/callscreen/internal/calllog/processor"
	"github.com/mclovin84/callscreen/internal/callscript"
	"github.com/mclovin84/callscreen/internal/classifier"
	"github.com/mclovin84/callscreen/internal/clients/mail"
	"github.com/mclovin84/callscreen/internal/clients/messaging"
	"github.com/mclovin84/callscreen/internal/clients/sheets"
	"github.com/mclovin84/callscreen/internal/notify"
	recordingsHandler "github.com/mclovin84/callscreen/internal/recordings/handler"
	recordingsProcessor "github.com/mclovin84/callscreen/internal/recordings/processor"
	screeningHandler "github.com/mclovin84/callscreen/internal/screening/handler"
	screeningProcessor "github.com/mclovin84/callscreen/internal/screening/processor"
	"github.com/mclovin84/callscreen/internal/screenlist"
	"github.com/mclovin84/callscreen/internal/webhookauth"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Logger *observability.Logger

	// Handlers
	ScreeningHandler  screeningHandler.Handler
	RecordingsHandler recordingsHandler.Handler
	CallLogHandler    calllogHandler.Handler

	// Webhook signature verification
	Verifier *webhookauth.Verifier
}

// Initialize sets up all application dependencies. Integrations are optional:
// each one is wired only when its credentials are configured, and the
// processors degrade to their built-in fallbacks when one is absent.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize the spreadsheet client. Without it the screener still routes
	// calls; it just keeps no log and treats every caller as unlisted.
	var listSource screenlist.ListSource
	var rowAppender calllogProcessor.RowAppender
	if cfg.Sheets.SpreadsheetID != "" {
		sheetsClient, err := sheets.New(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsJSON, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets client: %w", err)
		}
		listSource = sheetsClient
		rowAppender = sheetsClient
	}

	// Initialize the SMS client
	var messagingClient *messaging.Client
	var smsSender notify.SMSSender
	if cfg.Telephony.AccountSID != "" {
		messagingClient = messaging.New(cfg.Telephony.AccountSID, cfg.Telephony.AuthToken, cfg.Telephony.FromNumber, logger)
		smsSender = messagingClient
	}

	// Initialize the email client
	var emailSender notify.EmailSender
	if cfg.Notify.ResendAPIKey != "" {
		mailClient, err := mail.NewResendClient(cfg.Notify.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		emailSender = mailClient
	}

	// Initialize the transcript classifier when the configured provider has a key
	var transcriptClassifier recordingsProcessor.TranscriptClassifier
	classifierKey := cfg.AI.OpenAIAPIKey
	if cfg.AI.Provider == "gemini" {
		classifierKey = cfg.AI.GoogleAIAPIKey
	}
	if classifierKey != "" {
		transcriptClassifier = classifier.New(cfg.AI.Provider, cfg.AI.OpenAIAPIKey, cfg.AI.GoogleAIAPIKey, logger)
	}

	// Initialize owner notification service
	notifier := notify.New(smsSender, emailSender, cfg.Screening.OwnerNumber, cfg.Notify.EmailSender, cfg.Notify.OwnerEmail, logger)

	// Initialize the screen list service
	lists := screenlist.New(listSource, cfg.Screening.RefreshInterval, cfg.Screening.NormalizeNumbers, logger)

	// Initialize the call script builder
	builder := callscript.New(cfg.Screening.OwnerNumber, cfg.Screening.BusinessName, cfg.Screening.PublicBaseURL, cfg.Screening.Voice)

	// Initialize call log processor and handler
	callLogProc := calllogProcessor.New(rowAppender, notifier, logger)
	deps.CallLogHandler = calllogHandler.New(callLogProc, logger)

	// Initialize screening processor and handler
	screeningProc := screeningProcessor.New(builder, lists, &callLogProc, notifier, logger)
	deps.ScreeningHandler = screeningHandler.New(screeningProc, logger)

	// Initialize recordings processor and handler
	recordingsProc := recordingsProcessor.New(builder, transcriptClassifier, &callLogProc, notifier, logger)
	deps.RecordingsHandler = recordingsHandler.New(recordingsProc, logger)

	// Initialize webhook signature verification
	var signatureValidator webhookauth.SignatureValidator
	if cfg.Telephony.ValidateSignatures && messagingClient != nil {
		signatureValidator = messagingClient
	}
	deps.Verifier = webhookauth.New(signatureValidator, cfg.Screening.PublicBaseURL, logger)

	return deps, nil
}
