package app

import (
	"context"
	"errors"
	"fmt"

	"mentor-match/internal/config"
	"mentor-match/internal/database"
	"mentor-match/internal/database/migration"
	"mentor-match/internal/database/migrations"
	dbpostgres "mentor-match/internal/database/postgres"
	"mentor-match/internal/embedding"
	"mentor-match/internal/infrastructure/cache"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/repository"
	"mentor-match/internal/research"
	"mentor-match/internal/usecase"
	"mentor-match/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Log    *zap.Logger

	DB       database.DB
	Cache    *cache.Redis
	Embedder embedding.Embedder
	JWT      *jwt.HMACService
	Hub      *ws.Hub

	Mentors  repository.MentorRepository
	Ingestor *research.Ingestor

	MentorMatching *usecase.MentorMatching
	Applications   *usecase.Applications
	Readiness      *usecase.Readiness
	Trends         *usecase.Trends

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Container{Config: cfg, Log: log}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	runner := migration.Runner{FS: migrations.Files, Logger: log.Named("migration")}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	c.Cache = cache.NewRedis(cfg.Redis, cfg.Matching.CacheTTL, log)
	c.closers = append(c.closers, c.Cache.Close)

	c.Embedder = newEmbedder(ctx, cfg.Embedding, log)
	if g, ok := c.Embedder.(*embedding.Gemini); ok {
		c.closers = append(c.closers, g.Close)
	}

	c.JWT = jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	c.Hub = ws.NewHub(log)

	students := repository.NewPostgresStudentProfileRepository(db)
	studentSkills := repository.NewPostgresStudentSkillRepository(db)
	c.Mentors = repository.NewPostgresMentorRepository(db)
	trends := repository.NewPostgresTopicTrendRepository(db)
	opportunities := repository.NewPostgresOpportunityRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)

	c.MentorMatching = usecase.NewMentorMatchingUsecase(
		students, c.Mentors, trends, c.Embedder, c.Cache, c.Hub,
		usecase.MentorMatchingConfig{
			SemanticWeight: cfg.Matching.SemanticWeight,
			MinScore:       cfg.Matching.MinScore,
			CacheTTL:       cfg.Matching.CacheTTL,
			MaxTrends:      cfg.Matching.MaxTrends,
			Concurrency:    cfg.Matching.Concurrency,
			DefaultLimit:   cfg.Matching.DefaultLimit,
			MaxLimit:       cfg.Matching.MaxLimit,
			EmbedTimeout:   cfg.Embedding.Timeout,
		},
		log,
	)
	c.Applications = usecase.NewApplicationsUsecase(opportunities, applications, studentSkills, c.Mentors, log)
	c.Readiness = usecase.NewReadinessUsecase(students, studentSkills, c.MentorMatching, log)

	c.Ingestor = research.NewIngestor(
		c.Mentors, trends, newFetcher(cfg.Research, log), c.MentorMatching, c.Cache,
		research.IngestConfig{
			Workers:       cfg.Research.Workers,
			Interval:      cfg.Research.RateLimit,
			LookbackYears: cfg.Research.LookbackYears,
		},
		log,
	)
	c.Ingestor.SetNotifier(c.Hub)
	c.Trends = usecase.NewTrendsUsecase(c.Mentors, c.Ingestor, log)

	return c, nil
}

func newEmbedder(ctx context.Context, cfg config.EmbeddingConfig, log *zap.Logger) embedding.Embedder {
	if !cfg.Enabled() {
		log.Info("embedding disabled, ranking uses profile alignment only")
		return embedding.Disabled{}
	}
	g, err := embedding.NewGemini(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Warn("embedding client unavailable", zap.Error(err))
		return embedding.Disabled{}
	}
	log.Info("embedding enabled", zap.String("model", g.Model()))
	return g
}

func newFetcher(cfg config.ResearchConfig, log *zap.Logger) research.Fetcher {
	primary := research.NewCollyFetcher(cfg.UserAgent, cfg.RequestTimeout, research.DefaultSelectors)
	if !cfg.HeadlessFallback {
		return primary
	}
	headless := research.NewHeadlessFetcher(cfg.UserAgent, cfg.RequestTimeout, research.DefaultSelectors)
	return research.NewFallbackFetcher(primary, headless, log)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
