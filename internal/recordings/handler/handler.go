package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mclovin84/callscreen/internal/observability"
	"github.com/mclovin84/callscreen/internal/recordings/processor"
)

const xmlContentType = "text/xml; charset=utf-8"

const emptyResponse = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type Handler struct {
	processor processor.RecordingsProcessor
	logger    *observability.Logger
}

func New(processor processor.RecordingsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecordingCallbackRequest is the platform's form-encoded recording callback.
type RecordingCallbackRequest struct {
	CallSid           string `form:"CallSid"`
	From              string `form:"From"`
	RecordingURL      string `form:"RecordingUrl"`
	RecordingDuration string `form:"RecordingDuration"`
	TranscriptionText string `form:"TranscriptionText"`
}

// DialCompleteRequest is the dial action callback.
type DialCompleteRequest struct {
	CallSid        string `form:"CallSid"`
	DialCallStatus string `form:"DialCallStatus"`
}

// HandleProcessRecording answers the screening-recording callback with the
// caller's next script.
func (h *Handler) HandleProcessRecording(c *gin.Context) {
	ctx := c.Request.Context()

	event := h.bindRecording(c)
	xml, err := h.processor.ProcessRecording(ctx, event)
	h.respondXML(c, xml, err)
}

// HandleRecordingComplete takes the asynchronous transcription callback. The
// call has already moved on, so the reply is a plain acknowledgement.
func (h *Handler) HandleRecordingComplete(c *gin.Context) {
	ctx := c.Request.Context()

	event := h.bindRecording(c)
	h.processor.RecordingComplete(ctx, event)
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// HandleVoicemailComplete closes out a voicemail recording.
func (h *Handler) HandleVoicemailComplete(c *gin.Context) {
	ctx := c.Request.Context()

	event := h.bindRecording(c)
	xml, err := h.processor.VoicemailComplete(ctx, event)
	h.respondXML(c, xml, err)
}

// HandleDialComplete routes the caller after the owner dial ends.
func (h *Handler) HandleDialComplete(c *gin.Context) {
	ctx := c.Request.Context()

	var req DialCompleteRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(ctx, "failed to parse dial status callback", err)
	}

	xml, err := h.processor.DialComplete(ctx, req.CallSid, req.DialCallStatus)
	h.respondXML(c, xml, err)
}

func (h *Handler) bindRecording(c *gin.Context) processor.RecordingEvent {
	var req RecordingCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse recording callback", err)
	}
	return processor.RecordingEvent{
		CallID:       req.CallSid,
		From:         req.From,
		RecordingURL: req.RecordingURL,
		Duration:     req.RecordingDuration,
		Transcript:   req.TranscriptionText,
	}
}

func (h *Handler) respondXML(c *gin.Context, xml string, err error) {
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to render call script", err)
		xml, err = h.processor.ErrorXML()
		if err != nil {
			xml = emptyResponse
		}
	}
	c.Data(http.StatusOK, xmlContentType, []byte(xml))
}
