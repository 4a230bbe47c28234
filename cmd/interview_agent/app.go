package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/config"
	"github.com/omkar-nanda-ditstek/AI/internal/db"
	"github.com/omkar-nanda-ditstek/AI/internal/fetch"
	"github.com/omkar-nanda-ditstek/AI/internal/ingestion"
	"github.com/omkar-nanda-ditstek/AI/internal/interview"
	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/mongodb"
	"github.com/omkar-nanda-ditstek/AI/internal/patterns"
	"github.com/omkar-nanda-ditstek/AI/internal/service"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	svc      *service.Service
	client   llm.Client
	patterns *patterns.Store
	closers  []func()
}

// Close releases the provider client and storage connections.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires storage, the generation provider, the pattern store and the
// service from cfg.
func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{}

	repo, closeRepo, err := openRepository(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeRepo)

	llmCfg, err := cfg.LLM.ClientConfig()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid provider config: %w", err)
	}
	a.client = llm.NewClientWithFallback(ctx, llmCfg, log)
	a.closers = append(a.closers, func() { _ = a.client.Close() })

	a.patterns, err = loadPatterns(cfg.Interview, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	fetchOpts := fetch.DefaultOptions()
	a.svc, err = service.New(service.Deps{
		Repo:        repo,
		Extractor:   ingestion.NewExtractor(log),
		Interviewer: interview.New(a.client, a.patterns, log),
		Patterns:    a.patterns,
		Logger:      log,
	}, service.Options{
		MaxUploadBytes:    cfg.Upload.MaxBytes,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		FallbackQuestions: cfg.Interview.FallbackQuestions,
		AllowBrowser:      cfg.Upload.AllowBrowser,
		Workers:           cfg.Upload.Workers,
		Fetch:             fetchOpts,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// openRepository connects the configured storage backend.
func openRepository(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (service.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			if err := database.Migrate(ctx); err != nil {
				database.Close()
				return nil, nil, err
			}
		}
		log.Info("using postgres storage")
		return database, database.Close, nil

	case config.BackendMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURL, mongodb.Options{
			Database:           cfg.Database,
			ResumesCollection:  cfg.ResumesCollection,
			SessionsCollection: cfg.SessionsCollection,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, nil, err
		}
		log.Info("using mongodb storage", zap.String("database", cfg.Database))
		return store, func() { _ = store.Close(context.Background()) }, nil

	case config.BackendMemory, "":
		log.Info("using in-memory storage; data is lost on exit")
		return service.NewMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// loadPatterns reads the training file. A missing file is seeded with the
// built-in examples when seeding is enabled.
func loadPatterns(cfg config.InterviewConfig, log *zap.Logger) (*patterns.Store, error) {
	if cfg.TrainingFile == "" {
		if cfg.SeedPatterns {
			return patterns.Seeded(), nil
		}
		return patterns.New(patterns.TrainingData{}), nil
	}

	store, err := patterns.Load(cfg.TrainingFile)
	if err != nil {
		return nil, err
	}

	snap := store.Snapshot()
	if len(snap.InterviewPatterns) == 0 && cfg.SeedPatterns {
		for _, ex := range patterns.SeedExamples {
			if err := store.AddExample(ex); err != nil {
				return nil, err
			}
		}
		if err := store.Save(); err != nil {
			log.Warn("failed to write seeded training data", zap.String("path", cfg.TrainingFile), zap.Error(err))
		} else {
			log.Info("seeded training data", zap.String("path", cfg.TrainingFile))
		}
	}
	return store, nil
}
