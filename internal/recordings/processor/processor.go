package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"

	calllogProcessor "github.com/mclovin84/callscreen/internal/calllog/processor"
	"github.com/mclovin84/callscreen/internal/callscript"
	"github.com/mclovin84/callscreen/internal/classifier"
	"github.com/mclovin84/callscreen/internal/observability"
)

// TranscriptClassifier turns a screening transcript into a routing decision.
type TranscriptClassifier interface {
	Classify(ctx context.Context, transcript string) (classifier.Classification, error)
}

// CallLogger records call activity on the spreadsheet.
type CallLogger interface {
	LogScreening(ctx context.Context, record calllogProcessor.ScreeningRecord)
	LogVoicemail(ctx context.Context, record calllogProcessor.VoicemailRecord)
	LogEvent(ctx context.Context, event, callID, detail string)
}

// OwnerNotifier texts the owner a screening summary.
type OwnerNotifier interface {
	CallScreened(ctx context.Context, from, callerName, decision, reason string)
}

// RecordingEvent is the platform's recording callback, reduced to the fields
// the screener uses.
type RecordingEvent struct {
	CallID       string
	From         string
	RecordingURL string
	Duration     string
	Transcript   string
}

// RecordingsProcessor drives the call flow after a recording: classifying
// screening recordings and closing out voicemails. The classifier is
// optional; without one, screened callers go to voicemail.
type RecordingsProcessor struct {
	builder    callscript.Builder
	classifier TranscriptClassifier
	callLog    CallLogger
	notifier   OwnerNotifier
	logger     *observability.Logger
}

func New(builder callscript.Builder, transcriptClassifier TranscriptClassifier, callLog CallLogger, notifier OwnerNotifier, logger *observability.Logger) RecordingsProcessor {
	return RecordingsProcessor{
		builder:    builder,
		classifier: transcriptClassifier,
		callLog:    callLog,
		notifier:   notifier,
		logger:     logger,
	}
}

// ProcessRecording decides the next script once the screening recording
// finishes. Most platforms transcribe asynchronously, so the transcript is
// usually absent here and the caller is sent to voicemail; the transcription
// callback classifies later. An inline transcript is classified immediately.
func (p *RecordingsProcessor) ProcessRecording(ctx context.Context, event RecordingEvent) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: event.CallID},
	)

	p.callLog.LogEvent(ctx, "screening_recorded", event.CallID, event.RecordingURL)

	if event.Transcript == "" || p.classifier == nil {
		p.logger.Info(ctx, "no transcript to classify, taking a message")
		return p.builder.VoicemailXML()
	}

	result, err := p.classifier.Classify(ctx, event.Transcript)
	if err != nil {
		p.logger.Error(ctx, "failed to classify screening recording", err)
		return p.builder.VoicemailXML()
	}

	p.recordDecision(ctx, event, result)
	return p.builder.XMLFor(result.Decision)
}

// RecordingComplete handles the asynchronous transcription callback. By now
// the caller is already in the voicemail flow, so the classification only
// feeds the log and the owner notification.
func (p *RecordingsProcessor) RecordingComplete(ctx context.Context, event RecordingEvent) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: event.CallID},
	)

	p.callLog.LogEvent(ctx, "transcription_received", event.CallID, event.Transcript)

	if event.Transcript == "" || p.classifier == nil {
		return
	}

	result, err := p.classifier.Classify(ctx, event.Transcript)
	if err != nil {
		p.logger.Error(ctx, "failed to classify transcription", err)
		return
	}

	p.recordDecision(ctx, event, result)
}

// VoicemailComplete logs the finished voicemail and thanks the caller. The
// log append also alerts the owner.
func (p *RecordingsProcessor) VoicemailComplete(ctx context.Context, event RecordingEvent) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: event.CallID},
	)

	p.callLog.LogVoicemail(ctx, calllogProcessor.VoicemailRecord{
		CallID:       event.CallID,
		From:         event.From,
		RecordingURL: event.RecordingURL,
		Duration:     event.Duration,
		Transcript:   event.Transcript,
	})

	return p.builder.ThankYouXML()
}

// DialComplete routes the caller after an owner dial. Anything short of a
// completed bridge falls through to voicemail.
func (p *RecordingsProcessor) DialComplete(ctx context.Context, callID, dialStatus string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: callID},
		observability.Field{Key: "dial_status", Value: dialStatus},
	)

	switch dialStatus {
	case "busy", "no-answer", "failed", "canceled":
		p.callLog.LogEvent(ctx, "dial_failed", callID, dialStatus)
		return p.builder.VoicemailXML()
	default:
		p.logger.Info(ctx, "dial finished")
		return p.builder.HangupXML()
	}
}

// ErrorXML is the safe fallback for voice webhooks.
func (p *RecordingsProcessor) ErrorXML() (string, error) {
	return p.builder.ErrorXML()
}

func (p *RecordingsProcessor) recordDecision(ctx context.Context, event RecordingEvent, result classifier.Classification) {
	p.callLog.LogScreening(ctx, calllogProcessor.ScreeningRecord{
		CallID:     event.CallID,
		From:       event.From,
		Decision:   result.Decision.String(),
		Reason:     result.CallReason,
		CallerName: result.CallerName,
	})
	if result.Decision == callscript.DecisionTransfer {
		p.notifier.CallScreened(ctx, event.From, result.CallerName, result.Decision.String(), result.CallReason)
	}
}
