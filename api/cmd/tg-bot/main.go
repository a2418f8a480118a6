package main

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"quiz-bot/api/internal/config"
	"quiz-bot/api/internal/engine"
	"quiz-bot/api/internal/httpserver"
	"quiz-bot/api/internal/quiz"
	"quiz-bot/api/internal/session"
	"quiz-bot/api/internal/telegram"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		logger.Fatal("missing required env TG_BOT_TOKEN")
	}

	// --- Session store ---
	db, err := session.Open(cfg.SessionDriver, cfg.SessionDSN)
	if err != nil {
		logger.Fatal("session db open", zap.Error(err))
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)

	store := session.NewSQLStore(db)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Fatal("session db ping", zap.Error(err))
		}
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("session db schema", zap.Error(err))
		}
	}

	// --- Question bank ---
	bank, err := quiz.LoadBank(cfg.QuestionsFile)
	if err != nil {
		logger.Fatal("load question bank", zap.Error(err))
	}
	logger.Info("question bank loaded",
		zap.String("file", cfg.QuestionsFile), zap.Int("questions", bank.Len()))

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal("telegram auth", zap.Error(err))
	}
	bot.Debug = false

	eng := &engine.Engine{
		Bank:     bank,
		Store:    store,
		Platform: "tg",
		Log:      logger,
	}
	r := &telegram.Router{Bot: bot, Engine: eng, Log: logger}

	go func() {
		addr := "0.0.0.0:" + cfg.Port
		if err := httpserver.StartHTTP(addr, logger, func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		}); err != nil {
			logger.Fatal("health server", zap.Error(err))
		}
	}()

	logger.Info("telegram quiz bot started")
	runPolling(context.Background(), logger, bot, r.HandleUpdate)
}

// ---------------- Polling loop -----------------

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

func retryDelayFromError(err error) time.Duration {
	if err == nil {
		return 0
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") { // HTTP 429 от Telegram
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return time.Duration(n) * time.Second
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return 2 * time.Second
		}
	}
	return 1 * time.Second
}

func runPolling(ctx context.Context, logger *zap.Logger, bot *tgbotapi.BotAPI, handle func(tgbotapi.Update)) {
	offset := 0
	baseDelay := 1 * time.Second
	maxDelay := 15 * time.Second

	for {
		select {
		case <-ctx.Done():
			logger.Info("polling: context cancelled")
			return
		default:
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = 30 // long polling timeout (sec)

		updates, err := bot.GetUpdates(u)
		if err != nil {
			d := retryDelayFromError(err)
			if d < baseDelay {
				d = baseDelay
			}
			if d > maxDelay {
				d = maxDelay
			}
			logger.Warn("polling error", zap.Error(err), zap.Duration("retry_in", d))
			time.Sleep(d)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(upd)
		}

		if len(updates) == 0 {
			time.Sleep(200 * time.Millisecond)
		}
	}
}
