package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mclovin84/callscreen/internal/observability"
	"github.com/mclovin84/callscreen/internal/screening/processor"
)

const xmlContentType = "text/xml; charset=utf-8"

// emptyResponse is the last-ditch reply if even the error script fails to
// render; an empty document hangs up cleanly.
const emptyResponse = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type Handler struct {
	processor processor.ScreeningProcessor
	logger    *observability.Logger
}

func New(processor processor.ScreeningProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CallflowRequest is the platform's form-encoded inbound-call webhook.
type CallflowRequest struct {
	CallSid string `form:"CallSid"`
	From    string `form:"From"`
	To      string `form:"To"`
}

// BlocklistRequest asks whether a caller is listed.
type BlocklistRequest struct {
	CallerNumber string `json:"caller_number"`
}

// WhisperRequest carries the caller details for the owner announcement.
type WhisperRequest struct {
	CallerName string `json:"caller_name" form:"CallerName"`
	CallReason string `json:"call_reason" form:"CallReason"`
}

// HandleIndex reports service status.
func (h *Handler) HandleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Call screening webhook ready."})
}

// HandleCheckBlocklist answers a list lookup. Any parse failure degrades to
// not-listed so the call proceeds to screening instead of failing.
func (h *Handler) HandleCheckBlocklist(c *gin.Context) {
	ctx := c.Request.Context()

	var req BlocklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to parse blocklist check request", err)
		c.JSON(http.StatusOK, processor.BlocklistCheck{Blocked: "false", Allowed: "false"})
		return
	}

	c.JSON(http.StatusOK, h.processor.CheckBlocklist(ctx, req.CallerNumber))
}

// HandleRouteCall executes the AI agent's routing decision. The reply is
// always 200 with a function result; failures return the error script so the
// live call is never stranded.
func (h *Handler) HandleRouteCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req processor.RouteCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to parse route-call request", err)
		c.JSON(http.StatusOK, h.processor.ErrorResult())
		return
	}

	c.JSON(http.StatusOK, h.processor.RouteCall(ctx, req))
}

// HandleCallflow screens a raw inbound call and answers with the next script.
func (h *Handler) HandleCallflow(c *gin.Context) {
	ctx := c.Request.Context()

	var req CallflowRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(ctx, "failed to parse callflow request", err)
	}

	xml, err := h.processor.Callflow(ctx, processor.CallInfo{
		CallID: req.CallSid,
		From:   req.From,
		To:     req.To,
	})
	h.respondXML(c, xml, err)
}

// HandleOwnerWhisper announces the caller on the owner's leg. JSON requests
// get the announcement document; form requests get the keypress prompt, and
// a posted digit accepts the call.
func (h *Handler) HandleOwnerWhisper(c *gin.Context) {
	ctx := c.Request.Context()

	if c.ContentType() == "application/json" {
		var req WhisperRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error(ctx, "failed to parse whisper request", err)
		}
		c.JSON(http.StatusOK, h.processor.Whisper(req.CallerName, req.CallReason))
		return
	}

	if c.PostForm("Digits") != "" {
		xml, err := h.processor.WhisperAccept()
		h.respondXML(c, xml, err)
		return
	}

	callerName := c.GetHeader("X-Caller-Name")
	if callerName == "" {
		callerName = c.PostForm("CallerName")
	}
	callReason := c.GetHeader("X-Call-Reason")
	if callReason == "" {
		callReason = c.PostForm("CallReason")
	}
	xml, err := h.processor.WhisperPrompt(callerName, callReason)
	h.respondXML(c, xml, err)
}

// HandleAIContext returns the context object for the AI screening step.
func (h *Handler) HandleAIContext(c *gin.Context) {
	ctx := c.Request.Context()

	var req BlocklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to parse ai-context request", err)
	}

	c.JSON(http.StatusOK, h.processor.AIContext(ctx, req.CallerNumber))
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
