package callscript

import "strings"

// Decision is the screening outcome for a call.
type Decision string

const (
	DecisionTransfer  Decision = "transfer"
	DecisionVoicemail Decision = "voicemail"
	DecisionBlock     Decision = "block"
)

// ParseDecision maps free-form input onto a decision. Anything unrecognized,
// including the empty string, screens out as block.
func ParseDecision(s string) Decision {
	switch Decision(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionTransfer:
		return DecisionTransfer
	case DecisionVoicemail:
		return DecisionVoicemail
	default:
		return DecisionBlock
	}
}

func (d Decision) String() string {
	return string(d)
}
