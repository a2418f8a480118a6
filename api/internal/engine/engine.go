// Package engine is the per-user quiz state machine shared by both front ends.
// It owns no I/O beyond the session store: adapters feed it inbound text and
// deliver the replies it produces.
package engine

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"quiz-bot/api/internal/quiz"
	"quiz-bot/api/internal/session"
)

// Outcome tells the adapter what kind of reply it is delivering.
type Outcome int

const (
	OutcomeGreeting Outcome = iota
	OutcomeQuestion
	OutcomeCorrect
	OutcomeWrong
	OutcomeSurrender
	OutcomeNoActive
)

// Reply is what the adapter sends back to the user.
type Reply struct {
	Text    string
	Outcome Outcome
}

// Engine coordinates quiz progress for one platform. Dependencies are injected
// at construction; the bank is read-only and shared, the store is the only
// mutable state.
type Engine struct {
	Bank     *quiz.Bank
	Store    session.Store
	Platform string // session key prefix: "tg" | "vk"
	Log      *zap.Logger

	// Rand overrides the selection source (tests); nil uses the global one.
	Rand *rand.Rand
}

// Greet initializes the user's session and produces the greeting. Used both on
// first contact and for an explicit /start.
func (e *Engine) Greet(ctx context.Context, userID int64) (Reply, error) {
	if err := e.Store.Set(ctx, session.Key(e.Platform, userID), ""); err != nil {
		return Reply{}, err
	}
	return Reply{Text: msgGreeting + " " + msgNewQuestion, Outcome: OutcomeGreeting}, nil
}

// Stopped is the front-end-local stop notice (Telegram /stop). The session is
// left as is: stopping ends the conversation, not the user's record.
func (e *Engine) Stopped() Reply {
	return Reply{Text: msgStopped, Outcome: OutcomeNoActive}
}

// Handle runs one inbound message through the state machine.
func (e *Engine) Handle(ctx context.Context, userID int64, text string) (Reply, error) {
	key := session.Key(e.Platform, userID)
	st, err := decodeState(e.Store.Get(ctx, key))
	if err != nil {
		return Reply{}, err
	}

	switch st.Kind {
	case StateUnknown:
		return e.Greet(ctx, userID)

	case StateIdle:
		if text == ButtonNewQuestion {
			return e.newQuestion(ctx, key)
		}
		return Reply{Text: msgNoActive + " " + msgNewQuestion, Outcome: OutcomeNoActive}, nil

	default: // StateActive
		answer, ok := e.Bank.Answer(st.Question)
		if !ok {
			// Банк пересобрали, вопрос из сессии в нём не найден —
			// восстанавливаемся в IDLE, пользователю ошибку не показываем.
			e.logger().Warn("session question missing from bank",
				zap.String("key", key), zap.String("question", st.Question))
			if err := e.Store.Set(ctx, key, ""); err != nil {
				return Reply{}, err
			}
			return Reply{Text: msgNoActive + " " + msgNewQuestion, Outcome: OutcomeNoActive}, nil
		}

		if text == ButtonSurrender {
			if err := e.Store.Set(ctx, key, ""); err != nil {
				return Reply{}, err
			}
			// Показываем исходный ответ из банка, без вырезания уточнений.
			return Reply{
				Text:    msgAnswerLabel + ":\n" + answer + "\n\n" + msgNewQuestion,
				Outcome: OutcomeSurrender,
			}, nil
		}

		if quiz.CheckAnswer(text, answer) {
			if err := e.Store.Set(ctx, key, ""); err != nil {
				return Reply{}, err
			}
			return Reply{Text: msgCorrect + " " + msgNewQuestion, Outcome: OutcomeCorrect}, nil
		}
		return Reply{Text: msgWrong + " " + msgSurrenderHint, Outcome: OutcomeWrong}, nil
	}
}

func (e *Engine) newQuestion(ctx context.Context, key string) (Reply, error) {
	question, ok := e.Bank.Random(e.Rand)
	if !ok {
		e.logger().Warn("question bank is empty")
		return Reply{Text: msgNoActive + " " + msgNewQuestion, Outcome: OutcomeNoActive}, nil
	}
	if err := e.Store.Set(ctx, key, question); err != nil {
		return Reply{}, err
	}
	return Reply{Text: question, Outcome: OutcomeQuestion}, nil
}

func (e *Engine) logger() *zap.Logger {
	if e.Log != nil {
		return e.Log
	}
	return zap.NewNop()
}
