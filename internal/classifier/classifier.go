// Package classifier turns a screening-call transcript into a routing
// decision using a hosted language model.
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mclovin84/callscreen/internal/callscript"
	"github.com/mclovin84/callscreen/internal/observability"
)

var ErrNoClassification = errors.New("no classification returned")

// Classification is the model's reading of the caller's stated purpose.
type Classification struct {
	Decision   callscript.Decision
	CallerName string
	CallReason string
}

const classifyPrompt = `You screen phone calls for a small business. The caller was asked to state their name and the reason for their call. Given the transcript, decide how to route the call.

Respond with a JSON object only, no other text, using exactly these keys:
{"decision": "transfer" | "voicemail" | "block", "caller_name": "...", "call_reason": "..."}

Route transfer for customers, known contacts, and urgent business. Route voicemail for legitimate but non-urgent matters. Route block for telemarketing, robocalls, and scams. Leave caller_name empty if no name was given.`

// Classifier calls the configured provider with a fixed screening prompt.
type Classifier struct {
	provider    string
	openAIKey   string
	googleAIKey string
	logger      *observability.Logger
}

func New(provider, openAIKey, googleAIKey string, logger *observability.Logger) *Classifier {
	return &Classifier{
		provider:    provider,
		openAIKey:   openAIKey,
		googleAIKey: googleAIKey,
		logger:      logger,
	}
}

// Classify sends the transcript to the provider and parses the decision.
func (c *Classifier) Classify(ctx context.Context, transcript string) (Classification, error) {
	var (
		raw string
		err error
	)
	switch c.provider {
	case "gemini":
		raw, err = c.classifyGemini(ctx, transcript)
	default:
		raw, err = c.classifyOpenAI(ctx, transcript)
	}
	if err != nil {
		return Classification{}, err
	}

	classification, err := parseClassification(raw)
	if err != nil {
		return Classification{}, err
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "decision", Value: classification.Decision.String()},
		observability.Field{Key: "provider", Value: c.provider},
	), "transcript classified")
	return classification, nil
}

type classificationPayload struct {
	Decision   string `json:"decision"`
	CallerName string `json:"caller_name"`
	CallReason string `json:"call_reason"`
}

// parseClassification extracts the JSON object from the model output, which
// some models wrap in code fences or prose despite the prompt.
func parseClassification(raw string) (Classification, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return Classification{}, fmt.Errorf("no JSON object in classifier output: %w", ErrNoClassification)
	}

	var payload classificationPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return Classification{}, fmt.Errorf("failed to parse classifier output: %w", err)
	}

	return Classification{
		Decision:   callscript.ParseDecision(payload.Decision),
		CallerName: strings.TrimSpace(payload.CallerName),
		CallReason: strings.TrimSpace(payload.CallReason),
	}, nil
}
