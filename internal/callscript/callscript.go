// Package callscript renders the call-control scripts behind every screening
// decision, in both dialects the platform accepts: JSON documents for
// AI-agent webhooks and XML markup for plain voice webhooks.
package callscript

import (
	"fmt"
	"strings"

	"github.com/mclovin84/callscreen/internal/swml"
)

const (
	dialTimeoutSeconds     = 30
	screeningRecordSeconds = 45
	voicemailRecordSeconds = 180
)

// Builder renders scripts for one configured deployment.
type Builder struct {
	ownerNumber  string
	businessName string
	baseURL      string
	voice        string
}

// New creates a script builder. baseURL may be empty, in which case callback
// URLs are emitted relative and the platform resolves them against the
// webhook it fetched.
func New(ownerNumber, businessName, baseURL, voice string) Builder {
	return Builder{
		ownerNumber:  ownerNumber,
		businessName: businessName,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		voice:        voice,
	}
}

// OwnerNumber returns the configured transfer destination.
func (b Builder) OwnerNumber() string {
	return b.ownerNumber
}

// BusinessName returns the name spoken in greetings and prompts.
func (b Builder) BusinessName() string {
	return b.businessName
}

func (b Builder) callbackURL(path string) string {
	if b.baseURL == "" {
		return path
	}
	return b.baseURL + path
}

// TransferDocument bridges the caller to the owner.
func (b Builder) TransferDocument() swml.Document {
	return swml.New(
		swml.Say(fmt.Sprintf("Please hold while I connect you to %s.", b.businessName), b.voice),
		swml.Connect(b.ownerNumber, dialTimeoutSeconds),
		swml.Hangup(),
	)
}

// VoicemailDocument prompts for a message, records it, and reports the
// recording to the voicemail completion webhook.
func (b Builder) VoicemailDocument() swml.Document {
	return swml.New(
		swml.Say(fmt.Sprintf("Please leave a message for %s after the beep. Hang up when you are done.", b.businessName), b.voice),
		swml.Record(swml.RecordParams{
			MaxLengthSeconds: voicemailRecordSeconds,
			Beep:             true,
			StatusURL:        b.callbackURL("/voicemail-complete"),
		}),
		swml.Say("Thank you. Your message has been recorded. Goodbye.", b.voice),
		swml.Hangup(),
	)
}

// BlockDocument plays the rejection and ends the call.
func (b Builder) BlockDocument() swml.Document {
	return swml.New(
		swml.Say("I'm sorry, we're unable to take your call at this time. Goodbye.", b.voice),
		swml.Hangup(),
	)
}

// ErrorDocument is the safe fallback when request handling fails. It must
// never itself fail to render.
func (b Builder) ErrorDocument() swml.Document {
	return swml.New(
		swml.Say("I'm sorry, there was an error. Please try again later.", b.voice),
		swml.Hangup(),
	)
}

// WhisperDocument announces the caller to the owner before the bridge.
func (b Builder) WhisperDocument(callerName, callReason string) swml.Document {
	return swml.New(swml.Say(b.whisperText(callerName, callReason), b.voice))
}

func (b Builder) whisperText(callerName, callReason string) string {
	text := "Incoming call"
	if callerName != "" {
		text += " from " + callerName
	}
	if callReason != "" {
		text += " regarding " + callReason
	}
	return text + "."
}

// ResultFor wraps the script for a decision in the function-result envelope
// returned to the platform's AI agent.
func (b Builder) ResultFor(decision Decision, callerName string) swml.FunctionResult {
	switch decision {
	case DecisionTransfer:
		return swml.FunctionResult{
			Response: fmt.Sprintf("Thank you %s, I'm connecting you now.", callerName),
			Action:   []swml.Action{swml.ExecuteDocument(b.TransferDocument())},
		}
	case DecisionVoicemail:
		return swml.FunctionResult{
			Response: "I'll take a message.",
			Action:   []swml.Action{swml.ExecuteDocument(b.VoicemailDocument())},
		}
	default:
		return swml.FunctionResult{
			Response: "I'm sorry, we're unable to take your call at this time.",
			Action:   []swml.Action{swml.ExecuteDocument(b.BlockDocument())},
		}
	}
}

// ErrorResult is the safe fallback envelope for AI-agent webhooks.
func (b Builder) ErrorResult() swml.FunctionResult {
	return swml.FunctionResult{
		Response: "I'm sorry, there was an error processing your call.",
		Action:   []swml.Action{swml.ExecuteDocument(b.ErrorDocument())},
	}
}
