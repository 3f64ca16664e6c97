package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatHandler "github.com/zhouzirui/solace/backend/internal/handler/chat"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

// Handler WebSocket聊天处理器
type Handler struct {
	engine   *support.Service
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// New 创建WebSocket处理器
func New(engine *support.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		engine:  engine,
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat", h.handleWebSocket)
}

// inboundMessage is either a plain chat frame {message, userMood?} or a typed
// envelope {type, data} for "text" and "config".
type inboundMessage struct {
	Type     string          `json:"type,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Message  string          `json:"message,omitempty"`
	UserMood string          `json:"userMood,omitempty"`
}

// TextMessage 用户文本消息
type TextMessage struct {
	Text     string `json:"text"`
	UserMood string `json:"userMood,omitempty"`
}

// ConfigMessage sets the mood declared for subsequent messages. An empty string clears it.
type ConfigMessage struct {
	UserMood *string `json:"userMood"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// connectionState 保存单个连接的上下文。Without a session only the last bot turn is kept,
// which is all the crisis follow-up reads.
type connectionState struct {
	sessionID string
	userMood  string
	lastBot   *chat.Turn
}

func (c *connectionState) history() []chat.Turn {
	if c.lastBot == nil {
		return nil
	}
	return []chat.Turn{*c.lastBot}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID != "" {
		if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	state := &connectionState{sessionID: sessionID}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go pingLoop(ctx, conn)

	h.send(conn, state, "connected", nil)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))
		h.handleMessage(ctx, conn, state, &msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, conn *websocket.Conn, state *connectionState, msg *inboundMessage) {
	switch msg.Type {
	case "":
		h.handleText(ctx, conn, state, TextMessage{Text: msg.Message, UserMood: msg.UserMood})
	case "text":
		var text TextMessage
		if err := json.Unmarshal(msg.Data, &text); err != nil {
			h.sendError(conn, "invalid text payload")
			return
		}
		h.handleText(ctx, conn, state, text)
	case "config":
		var cfg ConfigMessage
		if err := json.Unmarshal(msg.Data, &cfg); err != nil {
			h.sendError(conn, "invalid config payload")
			return
		}
		if cfg.UserMood != nil {
			state.userMood = strings.TrimSpace(*cfg.UserMood)
		}
		h.send(conn, state, "config", map[string]any{"userMood": state.userMood})
	default:
		h.sendError(conn, "unsupported message type: "+msg.Type)
	}
}

func (h *Handler) handleText(ctx context.Context, conn *websocket.Conn, state *connectionState, text TextMessage) {
	if strings.TrimSpace(text.Text) == "" {
		h.sendError(conn, "text is required")
		return
	}

	userMood := text.UserMood
	if userMood == "" {
		userMood = state.userMood
	}
	req := support.Request{Message: text.Text, UserMood: userMood, History: state.history()}

	result, err := chatHandler.Converse(ctx, h.engine, h.chatSvc, state.sessionID, req)
	if err != nil {
		if !errors.Is(err, chatService.ErrSessionNotFound) {
			log.Printf("[ws] converse failed: %v", err)
		}
		h.sendError(conn, utils.GenericFailure)
		return
	}

	if state.sessionID == "" {
		state.lastBot = &chat.Turn{
			Sender:    chat.SenderBot,
			Text:      result.ResponseText,
			Type:      string(result.Mood),
			Timestamp: result.Timestamp,
		}
	}

	h.send(conn, state, "result", result)
}

func (h *Handler) send(conn *websocket.Conn, state *connectionState, kind string, data interface{}) {
	msg := outgoingMessage{
		Type:      kind,
		SessionID: state.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write %s failed: %v", kind, err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	msg := outgoingMessage{
		Type:      "error",
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().Unix(),
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write error failed: %v", err)
	}
}

// pingLoop 定期发送ping消息。WriteControl may run concurrently with WriteJSON.
func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
