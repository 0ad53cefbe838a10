package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mentor-match/internal/domain/profile"
	"mentor-match/internal/logger"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoPublicationsURL = errors.New("mentor has no publications url")
	ErrQueueFull         = errors.New("ingest queue is full")
	ErrAlreadyRunning    = errors.New("ingest already running for mentor")
	ErrNotStarted        = errors.New("ingest workers not started")
)

type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

// Locker takes short-lived, best-effort locks. When the backend is not
// available ingestion proceeds unlocked.
type Locker interface {
	Available() bool
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type TrendsNotifier interface {
	NotifyTrendsUpdated(mentorID uuid.UUID, topics int)
}

type IngestResult struct {
	MentorID     uuid.UUID
	Publications int
	Trends       []profile.TopicTrend
}

type IngestConfig struct {
	Workers       int
	QueueSize     int
	Interval      time.Duration
	LookbackYears int
	LockTTL       time.Duration
}

type Ingestor struct {
	mentors     repository.MentorRepository
	trends      repository.TopicTrendRepository
	fetcher     Fetcher
	invalidator CacheInvalidator
	locker      Locker
	notifier    TrendsNotifier
	cfg         IngestConfig
	now         func() time.Time
	log         *zap.Logger

	mu      sync.Mutex
	pool    *WorkerPool
	drained chan struct{}
}

func NewIngestor(
	mentors repository.MentorRepository,
	trends repository.TopicTrendRepository,
	fetcher Fetcher,
	invalidator CacheInvalidator,
	locker Locker,
	cfg IngestConfig,
	log *zap.Logger,
) *Ingestor {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.Workers * 16
	}
	if cfg.LookbackYears <= 0 {
		cfg.LookbackYears = 3
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 5 * time.Minute
	}
	return &Ingestor{
		mentors:     mentors,
		trends:      trends,
		fetcher:     fetcher,
		invalidator: invalidator,
		locker:      locker,
		cfg:         cfg,
		now:         time.Now,
		log:         logger.Component(log, "research"),
	}
}

func (s *Ingestor) SetNotifier(n TrendsNotifier) {
	s.notifier = n
}

func ingestLockKey(mentorID uuid.UUID) string {
	return "research:ingest:lock:" + mentorID.String()
}

// Ingest fetches, analyses and stores the trends of one mentor, then drops
// every cached ranking.
func (s *Ingestor) Ingest(ctx context.Context, mentorID uuid.UUID) (IngestResult, error) {
	m, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		return IngestResult{}, err
	}
	if strings.TrimSpace(m.PublicationsURL) == "" {
		return IngestResult{}, ErrNoPublicationsURL
	}
	log := s.log.With(logger.MentorID(mentorID))

	if s.locker != nil && s.locker.Available() {
		key := ingestLockKey(mentorID)
		ok, err := s.locker.SetIfNotExists(ctx, key, "1", s.cfg.LockTTL)
		switch {
		case err != nil:
			log.Warn("ingest lock unavailable, continuing unlocked", zap.Error(err))
		case !ok:
			return IngestResult{}, ErrAlreadyRunning
		default:
			defer func() { _ = s.locker.Delete(context.WithoutCancel(ctx), key) }()
		}
	}

	pubs, err := s.fetcher.FetchPublications(ctx, m.PublicationsURL)
	if err != nil {
		return IngestResult{}, fmt.Errorf("fetch publications: %w", err)
	}

	trends := AnalyzeTrends(pubs, m.ResearchAreas, s.now().Year(), s.cfg.LookbackYears)
	if err := s.trends.ReplaceForMentor(ctx, mentorID, trends); err != nil {
		return IngestResult{}, fmt.Errorf("store trends: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateAll(ctx); err != nil {
			log.Warn("invalidate match caches", zap.Error(err))
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyTrendsUpdated(mentorID, len(trends))
	}

	log.Info("topic trends refreshed", zap.Int("publications", len(pubs)), zap.Int("topics", len(trends)))
	return IngestResult{MentorID: mentorID, Publications: len(pubs), Trends: trends}, nil
}

// Start launches the background workers used by Enqueue. Results are logged.
func (s *Ingestor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		return
	}
	s.pool = NewWorkerPool(s.cfg.Workers, s.cfg.QueueSize)
	s.pool.SetInterval(s.cfg.Interval)
	results := s.pool.Run(ctx)
	s.drained = make(chan struct{})

	go func() {
		defer close(s.drained)
		for res := range results {
			if res.Err != nil {
				s.log.Warn("background ingest failed", zap.Error(res.Err))
			}
		}
	}()
}

func (s *Ingestor) Enqueue(mentorID uuid.UUID) error {
	s.mu.Lock()
	pool := s.pool
	s.mu.Unlock()
	if pool == nil {
		return ErrNotStarted
	}
	ok := pool.TrySubmit(func(ctx context.Context) error {
		_, err := s.Ingest(ctx, mentorID)
		if err != nil {
			return fmt.Errorf("mentor %s: %w", mentorID, err)
		}
		return nil
	})
	if !ok {
		return ErrQueueFull
	}
	return nil
}

// IngestAll refreshes every active mentor that lists a publications page and
// waits for completion. It returns the number of mentors refreshed.
func (s *Ingestor) IngestAll(ctx context.Context) (int, error) {
	mentors, err := s.mentors.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	pool := NewWorkerPool(s.cfg.Workers, s.cfg.Workers*2)
	pool.SetInterval(s.cfg.Interval)
	results := pool.Run(ctx)

	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		defer pool.Close()
		for _, m := range mentors {
			if strings.TrimSpace(m.PublicationsURL) == "" {
				continue
			}
			id := m.ID
			queued := pool.SubmitContext(ctx, func(ctx context.Context) error {
				_, err := s.Ingest(ctx, id)
				if err != nil {
					return fmt.Errorf("mentor %s: %w", id, err)
				}
				return nil
			})
			if !queued {
				return
			}
		}
	}()

	done := 0
	var errs []error
	for res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		done++
	}
	<-submitted
	if err := ctx.Err(); err != nil {
		return done, err
	}
	return done, errors.Join(errs...)
}

func (s *Ingestor) Stop() {
	s.mu.Lock()
	pool, drained := s.pool, s.drained
	s.pool = nil
	s.mu.Unlock()
	if pool == nil {
		return
	}
	pool.Close()
	<-drained
}
