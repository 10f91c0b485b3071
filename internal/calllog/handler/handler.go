package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mclovin84/callscreen/internal/calllog/processor"
	"github.com/mclovin84/callscreen/internal/observability"
)

type Handler struct {
	processor processor.CallLogProcessor
	logger    *observability.Logger
}

func New(processor processor.CallLogProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// EventRequest is the body of a generic event append.
type EventRequest struct {
	Event  string `json:"event"`
	CallID string `json:"call_id"`
	Detail string `json:"detail"`
}

// HandleLogScreening appends a screening row. The reply is always 200 so the
// platform never retries or fails a call over a logging problem.
func (h *Handler) HandleLogScreening(c *gin.Context) {
	ctx := c.Request.Context()

	var record processor.ScreeningRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Error(ctx, "failed to parse screening log request", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	h.processor.LogScreening(ctx, record)
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}

// HandleLogVoicemail appends a voicemail row and notifies the owner.
func (h *Handler) HandleLogVoicemail(c *gin.Context) {
	ctx := c.Request.Context()

	var record processor.VoicemailRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Error(ctx, "failed to parse voicemail log request", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	h.processor.LogVoicemail(ctx, record)
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}

// HandleLogEvent appends a row to the events tab.
func (h *Handler) HandleLogEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to parse event log request", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	h.processor.LogEvent(ctx, req.Event, req.CallID, req.Detail)
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}
