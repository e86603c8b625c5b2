package handler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
	"github.com/kztJames01/makerSpace/internal/sse"
)

type ChatHandler struct {
	chatService *service.ChatService
	aiService   *service.AIMessageService
}

func NewChatHandler(chatService *service.ChatService, aiService *service.AIMessageService) *ChatHandler {
	return &ChatHandler{chatService: chatService, aiService: aiService}
}

// POST /api/teams/:teamId/channels
func (h *ChatHandler) CreateChannel(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=64"`
		Description string `json:"description" binding:"max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	channel, err := h.chatService.CreateChannel(middleware.GetTeamID(c), middleware.GetCurrentUserID(c), req.Name, req.Description)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, channel)
}

// GET /api/teams/:teamId/channels
func (h *ChatHandler) ListChannels(c *gin.Context) {
	channels, err := h.chatService.ListChannels(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, channels)
}

// GET /api/teams/:teamId/channels/:channelId/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(middleware.GetTeamID(c), parseID(c.Param("channelId")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, messages)
}

// POST /api/teams/:teamId/channels/:channelId/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	message, err := h.chatService.SendMessage(middleware.GetTeamID(c), parseID(c.Param("channelId")), middleware.GetCurrentUser(c), req.Content)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, message)
}

// GET /api/teams/:teamId/channels/:channelId/stream
//
// Server-sent event stream of new channel messages. Clients resume with
// Last-Event-ID; delivery is at-least-once, so consumers de-duplicate by
// the message id inside the event data.
func (h *ChatHandler) StreamMessages(c *gin.Context) {
	lastID := sse.ParseLastEventID(c.GetHeader("Last-Event-ID"))

	missed, events, unsub, err := h.chatService.Subscribe(middleware.GetTeamID(c), parseID(c.Param("channelId")), lastID)
	if err != nil {
		Fail(c, err)
		return
	}
	defer unsub()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	for _, ev := range missed {
		data, _ := json.Marshal(ev.Data)
		fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data)
	}
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// GET /api/teams/:teamId/ai-messages
func (h *ChatHandler) ListAIMessages(c *gin.Context) {
	messages, err := h.aiService.List(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, messages)
}

// POST /api/teams/:teamId/ai-messages
func (h *ChatHandler) AppendAIMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	message, err := h.aiService.Append(middleware.GetTeamID(c), middleware.GetCurrentUser(c), req.Content)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, message)
}

// POST /api/teams/:teamId/ai-messages/generate
func (h *ChatHandler) GenerateAIMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	userMsg, aiMsg, err := h.aiService.Generate(c.Request.Context(), middleware.GetTeamID(c), middleware.GetCurrentUser(c), req.Content)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, gin.H{"message": userMsg, "reply": aiMsg})
}
