package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"devcanvas/internal/api"
	"devcanvas/internal/cache"
	"devcanvas/internal/config"
	"devcanvas/internal/github"
	"devcanvas/internal/render"
	"devcanvas/internal/resume"
	"devcanvas/internal/service"
	"devcanvas/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	var store cache.Store = cache.NewRedisStore(redisClient)

	githubClient := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Token)
	svc := service.New(githubClient, store, cfg.GitHub.CacheTTL(), logger)
	renderer := render.MustNew()

	var parser *resume.Parser
	if cfg.LLM.APIKey != "" {
		llm := resume.NewLLMClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Endpoint)
		parser = resume.NewParser(llm, logger)
	} else {
		logger.Warn("no llm api key configured, resume extraction runs in fallback mode")
		parser = resume.NewParser(nil, logger)
	}

	var storageClient *storage.Client
	if cfg.MinIO.Enabled {
		var err error
		storageClient, err = storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}
		logger.Info("storage client ready", slog.String("bucket", cfg.MinIO.Bucket))
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
	}()

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, svc, renderer, parser, storageClient, cfg.Clamd.Addr, asynqClient)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
