package chat

import (
	"context"
	"time"

	"github.com/zhouzirui/solace/backend/internal/analysis/mood"
	"github.com/zhouzirui/solace/backend/internal/model/chat"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
)

// Converse answers req. With a sessionID the stored transcript replaces req.History and the
// user and bot turns are appended together, serialized with other messages on that session.
func Converse(ctx context.Context, engine *support.Service, sessions *chatService.Service, sessionID string, req support.Request) (mood.Result, error) {
	if sessionID == "" {
		return engine.ClassifyAndRespond(ctx, req)
	}

	receivedAt := time.Now().UTC()
	var result mood.Result
	_, err := sessions.Exchange(ctx, sessionID, func(transcript []chat.Turn) ([]chat.Turn, error) {
		req.History = transcript
		var err error
		result, err = engine.ClassifyAndRespond(ctx, req)
		if err != nil {
			return nil, err
		}
		return []chat.Turn{
			{Sender: chat.SenderUser, Text: req.Message, Timestamp: receivedAt},
			{Sender: chat.SenderBot, Text: result.ResponseText, Type: string(result.Mood), Timestamp: result.Timestamp},
		}, nil
	})
	if err != nil {
		return mood.Result{}, err
	}
	return result, nil
}
