package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/analysis/mood"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	engine  *support.Service
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(engine *support.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		engine:  engine,
		chatSvc: chatSvc,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/messages", h.handleTranscript)
}

// historyTurn mirrors what the web client keeps per message. Client ids are numeric and ignored.
type historyTurn struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type chatRequest struct {
	Message             string        `json:"message"`
	UserMood            string        `json:"userMood"`
	ConversationHistory []historyTurn `json:"conversationHistory"`
	SessionID           string        `json:"sessionId"`
}

type chatResponse struct {
	mood.Result
	SessionID string `json:"sessionId,omitempty"`
}

// handleChat 分类用户消息并返回回复
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	req := support.Request{
		Message:  payload.Message,
		UserMood: payload.UserMood,
		History:  toTurns(payload.ConversationHistory),
	}

	result, err := Converse(r.Context(), h.engine, h.chatSvc, payload.SessionID, req)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("[chat] error handling message: %v", err)
		utils.RespondFailure(w, utils.GenericFailure)
		return
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{Result: result, SessionID: payload.SessionID})
}

// handleCreateSession 创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		log.Printf("[chat] create session failed: %v", err)
		utils.RespondFailure(w, "failed to create session")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

// handleTranscript 返回会话记录
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	turns, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondFailure(w, "failed to load transcript")
		return
	}

	utils.RespondJSON(w, http.StatusOK, turns)
}

func toTurns(items []historyTurn) []chat.Turn {
	if len(items) == 0 {
		return nil
	}

	turns := make([]chat.Turn, 0, len(items))
	for _, item := range items {
		turn := chat.Turn{
			Text:   item.Text,
			Sender: item.Sender,
			Type:   item.Type,
		}
		if ts, err := time.Parse(time.RFC3339Nano, item.Timestamp); err == nil {
			turn.Timestamp = ts
		}
		turns = append(turns, turn)
	}
	return turns
}
