package main

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"quiz-bot/api/internal/config"
	"quiz-bot/api/internal/engine"
	"quiz-bot/api/internal/httpserver"
	"quiz-bot/api/internal/quiz"
	"quiz-bot/api/internal/session"
	"quiz-bot/api/internal/vk"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.VKToken == "" {
		logger.Fatal("missing required env VK_API_TOKEN")
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

	// --- VK client ---
	client := vk.New(cfg.VKToken)
	ctx := context.Background()

	var groupID int64
	if cfg.VKGroupID != "" {
		if groupID, err = strconv.ParseInt(cfg.VKGroupID, 10, 64); err != nil {
			logger.Fatal("bad VK_GROUP_ID", zap.Error(err))
		}
	} else if groupID, err = client.GroupID(ctx); err != nil {
		logger.Fatal("resolve group id", zap.Error(err))
	}

	eng := &engine.Engine{
		Bank:     bank,
		Store:    store,
		Platform: "vk",
		Log:      logger,
	}
	r := &vk.Router{Client: client, Engine: eng, Log: logger}

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

	logger.Info("vk quiz bot started", zap.Int64("group_id", groupID))
	if err := client.Listen(ctx, groupID, r.HandleMessage); err != nil {
		logger.Fatal("long poll", zap.Error(err))
	}
}
