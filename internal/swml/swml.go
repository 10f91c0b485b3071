// Package swml builds the JSON call-control documents the voice platform
// executes: an ordered list of verbs grouped into named sections.
package swml

// Verb is a single instruction, keyed by verb name.
type Verb map[string]interface{}

// Document is a complete call-control script.
type Document struct {
	Version  string            `json:"version"`
	Sections map[string][]Verb `json:"sections"`
}

// New builds a document whose main section runs the given verbs in order.
func New(verbs ...Verb) Document {
	return Document{
		Version:  "1.0.0",
		Sections: map[string][]Verb{"main": verbs},
	}
}

// Play speaks text through the platform TTS engine when the url carries the
// say: scheme, otherwise plays the audio at the url.
func Play(url, voice string) Verb {
	params := map[string]interface{}{"url": url}
	if voice != "" {
		params["say_voice"] = voice
	}
	return Verb{"play": params}
}

// Say is shorthand for Play with the say: scheme.
func Say(text, voice string) Verb {
	return Play("say:"+text, voice)
}

// Connect bridges the caller to a destination number. A zero timeout leaves
// the platform default in place.
func Connect(to string, timeoutSeconds int) Verb {
	params := map[string]interface{}{"to": to}
	if timeoutSeconds > 0 {
		params["timeout"] = timeoutSeconds
	}
	return Verb{"connect": params}
}

// RecordParams configures the record verb.
type RecordParams struct {
	MaxLengthSeconds int
	Beep             bool
	StatusURL        string
}

// Record captures caller audio. The platform posts the recording details to
// StatusURL when set.
func Record(p RecordParams) Verb {
	params := map[string]interface{}{"format": "mp3"}
	if p.MaxLengthSeconds > 0 {
		params["max_length"] = p.MaxLengthSeconds
	}
	if p.Beep {
		params["beep"] = true
	}
	if p.StatusURL != "" {
		params["status_url"] = p.StatusURL
	}
	return Verb{"record": params}
}

// Hangup ends the call.
func Hangup() Verb {
	return Verb{"hangup": map[string]interface{}{}}
}

// FunctionResult is the envelope returned to the platform's AI agent after a
// function call: spoken response text plus optional follow-up actions.
type FunctionResult struct {
	Response string   `json:"response"`
	Action   []Action `json:"action,omitempty"`
}

// Action is a single agent action.
type Action map[string]interface{}

// ExecuteDocument wraps a document in the action that hands call control to it.
func ExecuteDocument(doc Document) Action {
	return Action{"SWML": doc}
}
