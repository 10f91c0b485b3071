package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"strconv"

	calllogProcessor "github.com/mclovin84/callscreen/internal/calllog/processor"
	"github.com/mclovin84/callscreen/internal/callscript"
	"github.com/mclovin84/callscreen/internal/observability"
	"github.com/mclovin84/callscreen/internal/screenlist"
	"github.com/mclovin84/callscreen/internal/swml"
)

// Defaults applied when the AI agent omits an argument.
const (
	defaultCallerName = "Unknown"
	defaultCallReason = "No reason given"
)

// ListChecker answers a caller's list membership.
type ListChecker interface {
	Check(ctx context.Context, number string) screenlist.Status
}

// CallLogger records call activity on the spreadsheet.
type CallLogger interface {
	LogScreening(ctx context.Context, record calllogProcessor.ScreeningRecord)
	LogEvent(ctx context.Context, event, callID, detail string)
}

// OwnerNotifier texts the owner a screening summary.
type OwnerNotifier interface {
	CallScreened(ctx context.Context, from, callerName, decision, reason string)
}

// RoutingArgument is the AI agent's parsed function argument.
type RoutingArgument struct {
	Decision   string `json:"decision"`
	CallerName string `json:"caller_name"`
	CallReason string `json:"call_reason"`
}

// FunctionArgument wraps the agent's arguments. Parsed carries at most one
// argument object; Raw is the agent's unparsed text.
type FunctionArgument struct {
	Parsed []RoutingArgument `json:"parsed"`
	Raw    string            `json:"raw"`
}

// CallInfo is the call metadata the platform attaches to its webhooks.
type CallInfo struct {
	CallID string `json:"call_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// RouteCallRequest is the AI-agent function webhook envelope.
type RouteCallRequest struct {
	Argument FunctionArgument `json:"argument"`
	Call     CallInfo         `json:"call"`
}

// BlocklistCheck reports list membership as the string booleans the
// platform's variable substitution expects.
type BlocklistCheck struct {
	Blocked string `json:"response_blocked"`
	Allowed string `json:"response_allowed"`
}

// ScreeningContext primes the platform's AI screening step.
type ScreeningContext struct {
	BusinessName     string   `json:"business_name"`
	CallerNumber     string   `json:"caller_number,omitempty"`
	ListStatus       string   `json:"list_status"`
	AllowedDecisions []string `json:"allowed_decisions"`
	Guidance         string   `json:"guidance"`
}

type ScreeningProcessor struct {
	builder  callscript.Builder
	lists    ListChecker
	callLog  CallLogger
	notifier OwnerNotifier
	logger   *observability.Logger
}

func New(builder callscript.Builder, lists ListChecker, callLog CallLogger, notifier OwnerNotifier, logger *observability.Logger) ScreeningProcessor {
	return ScreeningProcessor{
		builder:  builder,
		lists:    lists,
		callLog:  callLog,
		notifier: notifier,
		logger:   logger,
	}
}

// RouteCall turns the AI agent's routing decision into a call-control action.
// Unrecognized or missing decisions route to the rejection script.
func (p *ScreeningProcessor) RouteCall(ctx context.Context, req RouteCallRequest) swml.FunctionResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: req.Call.CallID},
	)

	var arg RoutingArgument
	if len(req.Argument.Parsed) > 0 {
		arg = req.Argument.Parsed[0]
	} else if req.Call.From != "" {
		// No structured argument from the agent; fall back to list screening.
		status := p.lists.Check(ctx, req.Call.From)
		switch status {
		case screenlist.StatusAllowed:
			arg.Decision = callscript.DecisionTransfer.String()
			arg.CallReason = "allowlist"
		default:
			arg.Decision = callscript.DecisionBlock.String()
			if status == screenlist.StatusBlocked {
				arg.CallReason = "blocklist"
			}
		}
	}

	decision := callscript.ParseDecision(arg.Decision)
	callerName := arg.CallerName
	if callerName == "" {
		callerName = defaultCallerName
	}
	callReason := arg.CallReason
	if callReason == "" {
		callReason = defaultCallReason
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "decision", Value: decision.String()},
		observability.Field{Key: "caller_name", Value: callerName},
	), "routing decision received")

	p.callLog.LogScreening(ctx, calllogProcessor.ScreeningRecord{
		CallID:     req.Call.CallID,
		From:       req.Call.From,
		Decision:   decision.String(),
		Reason:     callReason,
		CallerName: callerName,
	})
	if decision == callscript.DecisionTransfer {
		p.notifier.CallScreened(ctx, req.Call.From, arg.CallerName, decision.String(), arg.CallReason)
	}

	return p.builder.ResultFor(decision, callerName)
}

// Callflow screens a raw inbound call. Allowed callers are bridged straight
// to the owner, blocked callers are rejected, and everyone else is asked to
// state their name and reason so the recording can be classified.
func (p *ScreeningProcessor) Callflow(ctx context.Context, call CallInfo) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: call.CallID},
		observability.Field{Key: "from", Value: call.From},
	)

	status := p.lists.Check(ctx, call.From)
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "list_status", Value: string(status)},
	), "inbound call screened")

	switch status {
	case screenlist.StatusAllowed:
		p.callLog.LogScreening(ctx, calllogProcessor.ScreeningRecord{
			CallID:     call.CallID,
			From:       call.From,
			Decision:   callscript.DecisionTransfer.String(),
			Reason:     "allowlist",
			CallerName: defaultCallerName,
		})
		p.notifier.CallScreened(ctx, call.From, "", callscript.DecisionTransfer.String(), "allowlist")
		return p.builder.TransferXML()
	case screenlist.StatusBlocked:
		p.callLog.LogScreening(ctx, calllogProcessor.ScreeningRecord{
			CallID:     call.CallID,
			From:       call.From,
			Decision:   callscript.DecisionBlock.String(),
			Reason:     "blocklist",
			CallerName: defaultCallerName,
		})
		return p.builder.BlockXML()
	default:
		p.callLog.LogEvent(ctx, "screening_started", call.CallID, call.From)
		return p.builder.ScreeningXML()
	}
}

// CheckBlocklist answers the platform's list lookup. Lookup problems come
// back as false rather than an error, so the call proceeds to screening.
func (p *ScreeningProcessor) CheckBlocklist(ctx context.Context, callerNumber string) BlocklistCheck {
	status := p.lists.Check(ctx, callerNumber)
	return BlocklistCheck{
		Blocked: strconv.FormatBool(status == screenlist.StatusBlocked),
		Allowed: strconv.FormatBool(status == screenlist.StatusAllowed),
	}
}

// AIContext assembles the context object consumed by the platform's AI
// screening step.
func (p *ScreeningProcessor) AIContext(ctx context.Context, callerNumber string) ScreeningContext {
	listStatus := screenlist.StatusUnknown
	if callerNumber != "" {
		listStatus = p.lists.Check(ctx, callerNumber)
	}
	return ScreeningContext{
		BusinessName: p.builder.BusinessName(),
		CallerNumber: callerNumber,
		ListStatus:   string(listStatus),
		AllowedDecisions: []string{
			callscript.DecisionTransfer.String(),
			callscript.DecisionVoicemail.String(),
			callscript.DecisionBlock.String(),
		},
		Guidance: "Greet the caller, ask for their name and the reason for the call, then choose a decision. Transfer known contacts and urgent business, take a message for routine matters, and block telemarketers and robocalls.",
	}
}

// Whisper renders the owner-leg announcement document.
func (p *ScreeningProcessor) Whisper(callerName, callReason string) swml.Document {
	return p.builder.WhisperDocument(callerName, callReason)
}

// WhisperPrompt renders the owner-leg keypress prompt.
func (p *ScreeningProcessor) WhisperPrompt(callerName, callReason string) (string, error) {
	return p.builder.WhisperXML(callerName, callReason)
}

// WhisperAccept renders the empty document that completes the bridge.
func (p *ScreeningProcessor) WhisperAccept() (string, error) {
	return p.builder.WhisperAcceptXML()
}

// ErrorResult is the safe fallback for AI-agent webhooks.
func (p *ScreeningProcessor) ErrorResult() swml.FunctionResult {
	return p.builder.ErrorResult()
}

// ErrorXML is the safe fallback for voice webhooks.
func (p *ScreeningProcessor) ErrorXML() (string, error) {
	return p.builder.ErrorXML()
}
