package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	calllogHandler "github.com/mclovin84/callscreen/internal/calllog/handler"
	recordingsHandler "github.com/mclovin84/callscreen/internal/recordings/handler"
	screeningHandler "github.com/mclovin84/callscreen/internal/screening/handler"
	"github.com/mclovin84/callscreen/internal/webhookauth"
)

type API struct {
	router            *gin.RouterGroup
	screeningHandler  screeningHandler.Handler
	recordingsHandler recordingsHandler.Handler
	callLogHandler    calllogHandler.Handler
	verifier          *webhookauth.Verifier
}

func New(router *gin.RouterGroup, screening screeningHandler.Handler, recordings recordingsHandler.Handler,
	callLog calllogHandler.Handler, verifier *webhookauth.Verifier) API {
	return API{
		router:            router,
		screeningHandler:  screening,
		recordingsHandler: recordings,
		callLogHandler:    callLog,
		verifier:          verifier,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/", a.screeningHandler.HandleIndex)

	webhooks := a.router.Group("/", a.verifier.Middleware())
	{
		webhooks.POST("/check-blocklist", a.screeningHandler.HandleCheckBlocklist)
		webhooks.POST("/route-call", a.screeningHandler.HandleRouteCall)
		webhooks.POST("/callflow", a.screeningHandler.HandleCallflow)
		webhooks.POST("/owner-whisper", a.screeningHandler.HandleOwnerWhisper)
		webhooks.POST("/ai-context", a.screeningHandler.HandleAIContext)

		webhooks.POST("/process-recording", a.recordingsHandler.HandleProcessRecording)
		webhooks.POST("/recording-complete", a.recordingsHandler.HandleRecordingComplete)
		webhooks.POST("/voicemail-complete", a.recordingsHandler.HandleVoicemailComplete)
		webhooks.POST("/dial-complete", a.recordingsHandler.HandleDialComplete)

		webhooks.POST("/log-screening", a.callLogHandler.HandleLogScreening)
		webhooks.POST("/log-voicemail", a.callLogHandler.HandleLogVoicemail)
		webhooks.POST("/log-event", a.callLogHandler.HandleLogEvent)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
