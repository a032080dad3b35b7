package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-editor/internal/adapter/http"
	repo "resume-editor/internal/adapter/repository"
	"resume-editor/internal/infrastructure/migration"
	"resume-editor/internal/usecase"
	"resume-editor/pkg/ai"
	"resume-editor/pkg/importer"
	infra "resume-editor/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := infra.LoadConfig(".env")

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		logger.Error("storage not available", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	resumeRepo := repo.NewResumeRepo(store, repo.WithKey(cfg.StorageKey), repo.WithLogger(logger))

	opts := []usecase.Option{usecase.WithLogger(logger), usecase.WithSaveDelay(cfg.SaveDelay)}
	if cfg.ChromePath != "" || cfg.ChromeWSURL != "" {
		opts = append(opts, usecase.WithRenderer(infra.NewChromedpRenderer(cfg.ChromePath, cfg.ChromeWSURL)))
	}
	editor := usecase.NewEditor(resumeRepo, newEnhancer(cfg), newImporter(cfg), opts...)
	editor.LoadOnStart(ctx)

	app := fiber.New(fiber.Config{BodyLimit: httpadapter.MaxUploadSize + 1<<20})
	httpadapter.NewHandler(editor, logger).Register(app)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "port", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg infra.Config) (repo.Store, func(), error) {
	switch cfg.Store {
	case infra.StoreRedis:
		cache, client, err := infra.NewCache(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewCacheStore(cache), func() { _ = client.Close() }, nil
	case infra.StorePostgres:
		pool, err := infra.NewResumePool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo.NewPostgresStore(pool), pool.Close, nil
	default:
		return repo.NewMemoryStore(), func() {}, nil
	}
}

func newEnhancer(cfg infra.Config) usecase.Enhancer {
	switch cfg.Enhancer {
	case infra.EnhancerAIService:
		return ai.NewClient(cfg.AIServiceURL, cfg.AILanguage)
	case infra.EnhancerOpenAI:
		return ai.NewOpenAIEnhancer(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.AILanguage)
	default:
		return ai.NewCannedEnhancer(cfg.EnhanceLatency, time.Now().UnixNano())
	}
}

func newImporter(cfg infra.Config) usecase.Importer {
	sample := importer.NewSampleImporter(cfg.ImportLatency)
	if cfg.ImportVerify {
		return importer.NewVerifying(sample)
	}
	return sample
}
