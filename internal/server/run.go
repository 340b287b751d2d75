package server

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Sushanth145/graphql-intro/graph"
	"github.com/Sushanth145/graphql-intro/internal/config"
	"github.com/Sushanth145/graphql-intro/internal/logger"
	"github.com/Sushanth145/graphql-intro/internal/storage/memory"
)

// Main - общая точка входа для бинарников cmd/*
func Main(variant graph.Variant) {
	// загружаем .env из нашего config.go
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	store := memory.NewPostMemoryStorage(memory.SeedPosts()...)

	resolver := &graph.Resolver{
		PostStore:    store,
		CommentStore: store,
	}

	srv, err := New(cfg, zlog, variant, resolver)
	if err != nil {
		zlog.Fatal("failed to build server", zap.Error(err))
	}

	// Ожидание SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
