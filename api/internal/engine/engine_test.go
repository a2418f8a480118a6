package engine

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-bot/api/internal/quiz"
	"quiz-bot/api/internal/session"
)

const (
	testQuestion = "Столица Франции?"
	testAnswer   = "Париж (главный город страны). Стоит на Сене."
)

func newTestEngine(t *testing.T) (*Engine, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	eng := &Engine{
		Bank:     quiz.NewBank(map[string]string{testQuestion: testAnswer}),
		Store:    store,
		Platform: "tg",
	}
	return eng, store
}

func sessionValue(t *testing.T, store session.Store, userID int64) string {
	t.Helper()
	v, err := store.Get(context.Background(), session.Key("tg", userID))
	require.NoError(t, err)
	return v
}

func TestEngineScenario(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)
	const uid int64 = 42

	t.Run("first contact greets and creates idle session", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, "привет")
		require.NoError(t, err)
		assert.Equal(t, OutcomeGreeting, reply.Outcome)
		assert.Contains(t, reply.Text, "Привет")
		assert.Equal(t, "", sessionValue(t, store, uid))
	})

	t.Run("idle free text yields no-active notice", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, "как дела?")
		require.NoError(t, err)
		assert.Equal(t, OutcomeNoActive, reply.Outcome)
		assert.Contains(t, reply.Text, msgNoActive)
		assert.Equal(t, "", sessionValue(t, store, uid))
	})

	t.Run("new question request issues a question", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, ButtonNewQuestion)
		require.NoError(t, err)
		assert.Equal(t, OutcomeQuestion, reply.Outcome)
		assert.Equal(t, testQuestion, reply.Text)
		assert.Equal(t, testQuestion, sessionValue(t, store, uid))
	})

	t.Run("wrong answer leaves the session active", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, "Лион")
		require.NoError(t, err)
		assert.Equal(t, OutcomeWrong, reply.Outcome)
		assert.Equal(t, testQuestion, sessionValue(t, store, uid))
	})

	t.Run("empty answer is just wrong", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, "   ")
		require.NoError(t, err)
		assert.Equal(t, OutcomeWrong, reply.Outcome)
		assert.Equal(t, testQuestion, sessionValue(t, store, uid))
	})

	t.Run("score button while active is an answer attempt", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, ButtonMyScore)
		require.NoError(t, err)
		assert.Equal(t, OutcomeWrong, reply.Outcome)
	})

	t.Run("correct answer clears the session", func(t *testing.T) {
		reply, err := eng.Handle(ctx, uid, "париж")
		require.NoError(t, err)
		assert.Equal(t, OutcomeCorrect, reply.Outcome)
		assert.Contains(t, reply.Text, msgCorrect)
		assert.Equal(t, "", sessionValue(t, store, uid))
	})
}

func TestEngineSurrender(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)
	const uid int64 = 7

	_, err := eng.Greet(ctx, uid)
	require.NoError(t, err)
	_, err = eng.Handle(ctx, uid, ButtonNewQuestion)
	require.NoError(t, err)

	reply, err := eng.Handle(ctx, uid, ButtonSurrender)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSurrender, reply.Outcome)
	// показывается исходный ответ целиком, со скобками и пояснением
	assert.Contains(t, reply.Text, testAnswer)
	assert.Equal(t, "", sessionValue(t, store, uid))
}

func TestEngineUnknownSessionQuestion(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)
	const uid int64 = 9

	// в сессии вопрос из прежнего банка
	require.NoError(t, store.Set(ctx, session.Key("tg", uid), "Вопрос, которого больше нет?"))

	reply, err := eng.Handle(ctx, uid, "какой-то ответ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoActive, reply.Outcome)
	assert.Equal(t, "", sessionValue(t, store, uid))
}

func TestEngineEmptyBank(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	eng := &Engine{Bank: quiz.NewBank(nil), Store: store, Platform: "tg"}
	const uid int64 = 3

	_, err := eng.Greet(ctx, uid)
	require.NoError(t, err)

	reply, err := eng.Handle(ctx, uid, ButtonNewQuestion)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoActive, reply.Outcome)
	assert.Equal(t, "", sessionValue(t, store, uid))
}

func TestEngineSeededSelection(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	bank := quiz.NewBank(map[string]string{
		"Вопрос а?": "1.",
		"Вопрос б?": "2.",
		"Вопрос в?": "3.",
	})
	eng := &Engine{
		Bank:     bank,
		Store:    store,
		Platform: "tg",
		Rand:     rand.New(rand.NewSource(1)),
	}
	const uid int64 = 5

	_, err := eng.Greet(ctx, uid)
	require.NoError(t, err)

	reply, err := eng.Handle(ctx, uid, ButtonNewQuestion)
	require.NoError(t, err)
	_, inBank := bank.Answer(reply.Text)
	assert.True(t, inBank)
	assert.Equal(t, reply.Text, sessionValue(t, store, uid))
}

func TestEngineGreetResets(t *testing.T) {
	ctx := context.Background()
	eng, store := newTestEngine(t)
	const uid int64 = 11

	_, err := eng.Greet(ctx, uid)
	require.NoError(t, err)
	_, err = eng.Handle(ctx, uid, ButtonNewQuestion)
	require.NoError(t, err)
	require.Equal(t, testQuestion, sessionValue(t, store, uid))

	reply, err := eng.Greet(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, OutcomeGreeting, reply.Outcome)
	assert.Equal(t, "", sessionValue(t, store, uid))
}

func TestStoppedText(t *testing.T) {
	eng, _ := newTestEngine(t)
	assert.True(t, strings.Contains(eng.Stopped().Text, "остановлена"))
}
