package stream

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatHandler "github.com/zhouzirui/solace/backend/internal/handler/chat"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler delivers chat replies as Server-Sent Events.
type Handler struct {
	engine  *support.Service
	chatSvc *chatService.Service
}

// New creates a new stream handler
func New(engine *support.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{engine: engine, chatSvc: chatSvc}
}

// RegisterRoutes 注册流式路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

// handleStream emits mood, message, suggestions and done events for one message.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	message := r.URL.Query().Get("message")
	if strings.TrimSpace(message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := r.Context()
	if _, err := h.chatSvc.GetSession(ctx, sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, map[string]any{
		"event":   "status",
		"message": "stream established",
	})

	req := support.Request{
		Message:  message,
		UserMood: r.URL.Query().Get("userMood"),
	}
	result, err := chatHandler.Converse(ctx, h.engine, h.chatSvc, sessionID, req)
	if err != nil {
		if !errors.Is(err, chatService.ErrSessionNotFound) {
			log.Printf("[sse] session=%s: %v", sessionID, err)
		}
		utils.SendSSEEvent(w, flusher, "error", utils.ErrorBody{Error: utils.GenericFailure, Type: "error"})
		return
	}

	utils.SendSSEEvent(w, flusher, "mood", map[string]any{
		"type":           result.Mood,
		"sentimentScore": result.SentimentScore,
	})
	utils.SendSSEEvent(w, flusher, "message", map[string]any{
		"message": result.ResponseText,
	})
	utils.SendSSEEvent(w, flusher, "suggestions", result.Suggestions)
	utils.SendSSEEvent(w, flusher, "done", map[string]any{
		"sessionId": sessionID,
		"timestamp": result.Timestamp,
	})
}
