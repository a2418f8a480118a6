package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"quiz-bot/api/internal/engine"
)

type Router struct {
	Bot    *tgbotapi.BotAPI
	Engine *engine.Engine
	Log    *zap.Logger
}

// HandleUpdate processes one inbound update. Sessions are keyed by the sender's
// user id; replies go to the chat the message came from.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	cid := upd.Message.Chat.ID
	uid := upd.Message.From.ID
	ctx := context.Background()

	if upd.Message.IsCommand() {
		switch upd.Message.Command() {
		case "start":
			reply, err := r.Engine.Greet(ctx, uid)
			if err != nil {
				r.Log.Error("greet failed", zap.Int64("user_id", uid), zap.Error(err))
				return
			}
			// Telegram-специфика: подсказываем команду остановки.
			r.send(cid, reply.Text+"\nЧтобы остановить игру, отправь /stop.")
		case "stop":
			r.send(cid, r.Engine.Stopped().Text)
		}
		// незнакомые команды молча игнорируем
		return
	}

	if upd.Message.Text == "" {
		return
	}
	reply, err := r.Engine.Handle(ctx, uid, upd.Message.Text)
	if err != nil {
		// Сырые ошибки пользователю не показываем.
		r.Log.Error("handle failed", zap.Int64("user_id", uid), zap.Error(err))
		return
	}
	r.send(cid, reply.Text)
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = quizKeyboard()
	if _, err := r.Bot.Send(msg); err != nil {
		r.Log.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
