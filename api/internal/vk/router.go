package vk

import (
	"context"

	"go.uber.org/zap"

	"quiz-bot/api/internal/engine"
)

type Router struct {
	Client *Client
	Engine *engine.Engine
	Log    *zap.Logger
}

// HandleMessage runs one inbound VK message through the engine and delivers the
// reply. The keyboard accompanies the greeting; VK keeps it on screen after.
func (r *Router) HandleMessage(m Message) {
	if m.Text == "" {
		return
	}
	ctx := context.Background()

	reply, err := r.Engine.Handle(ctx, m.FromID, m.Text)
	if err != nil {
		r.Log.Error("handle failed", zap.Int64("user_id", m.FromID), zap.Error(err))
		return
	}

	kb := ""
	if reply.Outcome == engine.OutcomeGreeting {
		kb = Keyboard()
	}
	if err := r.Client.SendMessage(ctx, m.FromID, reply.Text, kb); err != nil {
		r.Log.Warn("send failed", zap.Int64("user_id", m.FromID), zap.Error(err))
	}
}
