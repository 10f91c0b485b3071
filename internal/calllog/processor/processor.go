package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"github.com/mclovin84/callscreen/internal/observability"
)

// Spreadsheet tabs; the column order is the schema.
const (
	callLogRange    = "CallLog!A:F"
	voicemailsRange = "Voicemails!A:F"
	eventsRange     = "Events!A:D"
)

// RowAppender appends one row of cells to a spreadsheet tab.
type RowAppender interface {
	AppendRow(ctx context.Context, appendRange string, row []interface{}) error
}

// OwnerNotifier alerts the owner about a logged voicemail.
type OwnerNotifier interface {
	VoicemailReceived(ctx context.Context, from, recordingURL, transcript string)
}

// ScreeningRecord is one CallLog row.
type ScreeningRecord struct {
	CallID     string `json:"call_id"`
	From       string `json:"from"`
	Decision   string `json:"decision"`
	Reason     string `json:"reason"`
	CallerName string `json:"caller_name"`
}

// VoicemailRecord is one Voicemails row.
type VoicemailRecord struct {
	CallID       string `json:"call_id"`
	From         string `json:"from"`
	RecordingURL string `json:"recording_url"`
	Duration     string `json:"duration"`
	Transcript   string `json:"transcript"`
}

// CallLogProcessor appends call activity to the spreadsheet tabs. Appends
// are best-effort: a nil appender skips them and failures are logged and
// swallowed, so the spreadsheet can never fail a live call.
type CallLogProcessor struct {
	appender RowAppender
	notifier OwnerNotifier
	logger   *observability.Logger
}

func New(appender RowAppender, notifier OwnerNotifier, logger *observability.Logger) CallLogProcessor {
	return CallLogProcessor{
		appender: appender,
		notifier: notifier,
		logger:   logger,
	}
}

// LogScreening appends one CallLog row for a screening decision.
func (p *CallLogProcessor) LogScreening(ctx context.Context, record ScreeningRecord) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: record.CallID},
		observability.Field{Key: "decision", Value: record.Decision},
	)
	p.append(ctx, callLogRange, []interface{}{
		timestamp(), record.CallID, record.From, record.Decision, record.Reason, record.CallerName,
	})
}

// LogVoicemail appends one Voicemails row and alerts the owner.
func (p *CallLogProcessor) LogVoicemail(ctx context.Context, record VoicemailRecord) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: record.CallID},
	)
	p.append(ctx, voicemailsRange, []interface{}{
		timestamp(), record.CallID, record.From, record.RecordingURL, record.Duration, record.Transcript,
	})
	if p.notifier != nil {
		p.notifier.VoicemailReceived(ctx, record.From, record.RecordingURL, record.Transcript)
	}
}

// LogEvent appends one Events row.
func (p *CallLogProcessor) LogEvent(ctx context.Context, event, callID, detail string) {
	p.append(ctx, eventsRange, []interface{}{timestamp(), event, callID, detail})
}

func (p *CallLogProcessor) append(ctx context.Context, appendRange string, row []interface{}) {
	if p.appender == nil {
		return
	}
	if err := p.appender.AppendRow(ctx, appendRange, row); err != nil {
		p.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "append_range", Value: appendRange},
		), "failed to append log row", err)
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
