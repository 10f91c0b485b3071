package callscript

import (
	"fmt"
	"strconv"

	"github.com/twilio/twilio-go/twiml"
)

// TransferXML dials the owner and reports the dial outcome so unanswered
// transfers can fall through to voicemail. The owner leg fetches the whisper
// announcement before the bridge completes.
func (b Builder) TransferXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: fmt.Sprintf("Please hold while I connect you to %s.", b.businessName),
		Voice:   b.voice,
	}
	number := &twiml.VoiceNumber{
		PhoneNumber: b.ownerNumber,
		Url:         b.callbackURL("/owner-whisper"),
		Method:      "POST",
	}
	dial := &twiml.VoiceDial{
		Action:        b.callbackURL("/dial-complete"),
		Method:        "POST",
		Timeout:       strconv.Itoa(dialTimeoutSeconds),
		InnerElements: []twiml.Element{number},
	}
	return twiml.Voice([]twiml.Element{say, dial})
}

// ScreeningXML asks unknown callers to state their name and reason, records
// the answer, and hands the recording to the screening webhook. The platform
// transcribes asynchronously and reports to the transcription webhook.
func (b Builder) ScreeningXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: fmt.Sprintf("Hello, you've reached %s. Please state your name and the reason for your call after the beep.", b.businessName),
		Voice:   b.voice,
	}
	record := &twiml.VoiceRecord{
		Action:             b.callbackURL("/process-recording"),
		Method:             "POST",
		MaxLength:          strconv.Itoa(screeningRecordSeconds),
		PlayBeep:           "true",
		Timeout:            "5",
		FinishOnKey:        "#",
		Transcribe:         "true",
		TranscribeCallback: b.callbackURL("/recording-complete"),
	}
	// Reached only when the caller stays silent and no recording is made.
	fallback := &twiml.VoiceSay{
		Message: "We didn't receive a recording. Goodbye.",
		Voice:   b.voice,
	}
	return twiml.Voice([]twiml.Element{say, record, fallback, &twiml.VoiceHangup{}})
}

// VoicemailXML prompts for a message and reports the recording to the
// voicemail completion webhook.
func (b Builder) VoicemailXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: fmt.Sprintf("Please leave a message for %s after the beep. Hang up when you are done.", b.businessName),
		Voice:   b.voice,
	}
	record := &twiml.VoiceRecord{
		Action:      b.callbackURL("/voicemail-complete"),
		Method:      "POST",
		MaxLength:   strconv.Itoa(voicemailRecordSeconds),
		PlayBeep:    "true",
		Timeout:     "10",
		FinishOnKey: "#",
	}
	fallback := &twiml.VoiceSay{
		Message: "We didn't receive a message. Goodbye.",
		Voice:   b.voice,
	}
	return twiml.Voice([]twiml.Element{say, record, fallback, &twiml.VoiceHangup{}})
}

// BlockXML plays the rejection and ends the call.
func (b Builder) BlockXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: "I'm sorry, we're unable to take your call at this time. Goodbye.",
		Voice:   b.voice,
	}
	return twiml.Voice([]twiml.Element{say, &twiml.VoiceHangup{}})
}

// ErrorXML is the safe fallback when request handling fails.
func (b Builder) ErrorXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: "I'm sorry, there was an error. Please try again later.",
		Voice:   b.voice,
	}
	return twiml.Voice([]twiml.Element{say, &twiml.VoiceHangup{}})
}

// WhisperXML announces the caller on the owner's leg and waits for a
// keypress. Pressing a digit posts back to the whisper webhook, which answers
// with WhisperAcceptXML and completes the bridge; silence hangs up the leg so
// the dial falls through to voicemail.
func (b Builder) WhisperXML(callerName, callReason string) (string, error) {
	say := &twiml.VoiceSay{
		Message: b.whisperText(callerName, callReason) + " Press any key to accept.",
		Voice:   b.voice,
	}
	gather := &twiml.VoiceGather{
		Action:        b.callbackURL("/owner-whisper"),
		Method:        "POST",
		NumDigits:     "1",
		Timeout:       "10",
		InnerElements: []twiml.Element{say},
	}
	return twiml.Voice([]twiml.Element{gather, &twiml.VoiceHangup{}})
}

// WhisperAcceptXML is an empty document; returning it from the whisper
// webhook accepts the call.
func (b Builder) WhisperAcceptXML() (string, error) {
	return twiml.Voice(nil)
}

// ThankYouXML closes the call after a voicemail was recorded.
func (b Builder) ThankYouXML() (string, error) {
	say := &twiml.VoiceSay{
		Message: "Thank you. Your message has been recorded. Goodbye.",
		Voice:   b.voice,
	}
	return twiml.Voice([]twiml.Element{say, &twiml.VoiceHangup{}})
}

// HangupXML ends the call with no announcement.
func (b Builder) HangupXML() (string, error) {
	return twiml.Voice([]twiml.Element{&twiml.VoiceHangup{}})
}

// XMLFor renders the script for a screening decision.
func (b Builder) XMLFor(decision Decision) (string, error) {
	switch decision {
	case DecisionTransfer:
		return b.TransferXML()
	case DecisionVoicemail:
		return b.VoicemailXML()
	default:
		return b.BlockXML()
	}
}
