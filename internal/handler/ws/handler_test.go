package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/zhouzirui/solace/backend/internal/analysis/mood"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	chatservice "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
)

type frame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func dial(t *testing.T, query string) (*websocket.Conn, *chatservice.Service, func()) {
	t.Helper()
	engine, err := support.NewService(context.Background(), support.Config{})
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}
	chatSvc := chatservice.NewService()
	r := chi.NewRouter()
	New(engine, chatSvc).RegisterRoutes(r)
	srv := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello frame
	if err := conn.ReadJSON(&hello); err != nil || hello.Type != "connected" {
		t.Fatalf("expected connected frame, got %+v (err=%v)", hello, err)
	}

	return conn, chatSvc, func() {
		conn.Close()
		srv.Close()
	}
}

func sendText(t *testing.T, conn *websocket.Conn, text string) mood.Result {
	t.Helper()
	data, _ := json.Marshal(TextMessage{Text: text})
	if err := conn.WriteJSON(inboundMessage{Type: "text", Data: data}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out frame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Type != "result" {
		t.Fatalf("expected result frame, got %s: %s", out.Type, out.Data)
	}
	var res mood.Result
	if err := json.Unmarshal(out.Data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return res
}

func TestWebSocketKeepsConnectionHistory(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	if res := sendText(t, conn, "I want to kill myself"); res.Mood != mood.Crisis {
		t.Fatalf("expected crisis, got %s", res.Mood)
	}
	res := sendText(t, conn, "just an ordinary update")
	if res.Mood != mood.General {
		t.Fatalf("expected general, got %s", res.Mood)
	}
	if res.ResponseText != mood.CrisisFollowUp {
		t.Fatalf("expected crisis follow-up, got %q", res.ResponseText)
	}
}

func TestWebSocketConfigSetsUserMood(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	data, _ := json.Marshal(map[string]string{"userMood": "stressed"})
	if err := conn.WriteJSON(inboundMessage{Type: "config", Data: data}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var ack frame
	if err := conn.ReadJSON(&ack); err != nil || ack.Type != "config" {
		t.Fatalf("expected config ack, got %+v (err=%v)", ack, err)
	}

	if res := sendText(t, conn, "hello there"); res.Mood != mood.Stress {
		t.Fatalf("expected declared stress mood, got %s", res.Mood)
	}
}

func TestWebSocketRejectsUnknownType(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	if err := conn.WriteJSON(inboundMessage{Type: "audio"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out frame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Type != "error" {
		t.Fatalf("expected error frame, got %s", out.Type)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	engine, err := support.NewService(context.Background(), support.Config{})
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}
	r := chi.NewRouter()
	New(engine, chatservice.NewService()).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat?sessionId=missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial failure")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("expected 404 response, got %+v", resp)
	}
}

func TestWebSocketAcceptsPlainChatFrame(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	frames := []map[string]any{
		{"message": "I want to end it all"},
		{"message": "hi", "userMood": "lonely"},
	}
	want := []mood.Label{mood.Crisis, mood.Loneliness}
	for i, f := range frames {
		if err := conn.WriteJSON(f); err != nil {
			t.Fatalf("write: %v", err)
		}
		var out frame
		if err := conn.ReadJSON(&out); err != nil {
			t.Fatalf("read: %v", err)
		}
		if out.Type != "result" {
			t.Fatalf("frame %d: expected result, got %s: %s", i, out.Type, out.Data)
		}
		var res mood.Result
		if err := json.Unmarshal(out.Data, &res); err != nil {
			t.Fatalf("decode result: %v", err)
		}
		if res.Mood != want[i] {
			t.Fatalf("frame %d: expected %s, got %s", i, want[i], res.Mood)
		}
		if i == 1 && res.ResponseText != mood.CrisisFollowUp {
			t.Fatalf("expected crisis follow-up after crisis frame, got %q", res.ResponseText)
		}
	}
}

func TestWebSocketPlainFrameRequiresMessage(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	if err := conn.WriteJSON(map[string]any{"userMood": "sad"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out frame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Type != "error" {
		t.Fatalf("expected error frame, got %s", out.Type)
	}
}

func TestWebSocketFollowUpOnlyAfterCrisisReply(t *testing.T) {
	conn, _, cleanup := dial(t, "")
	defer cleanup()

	sendText(t, conn, "thinking about suicide")
	if res := sendText(t, conn, "just an ordinary update"); res.ResponseText != mood.CrisisFollowUp {
		t.Fatalf("expected crisis follow-up, got %q", res.ResponseText)
	}
	if res := sendText(t, conn, "just an ordinary update"); res.ResponseText == mood.CrisisFollowUp {
		t.Fatal("follow-up must only answer the message right after a crisis reply")
	}
}

func TestConnectionStateKeepsOnlyLastBotTurn(t *testing.T) {
	state := &connectionState{}
	if state.history() != nil {
		t.Fatal("expected no history before the first reply")
	}
	for _, m := range []mood.Label{mood.Crisis, mood.General, mood.Stress} {
		state.lastBot = &chat.Turn{Sender: chat.SenderBot, Type: string(m)}
	}
	history := state.history()
	if len(history) != 1 || history[0].Type != string(mood.Stress) {
		t.Fatalf("unexpected history: %+v", history)
	}
}
