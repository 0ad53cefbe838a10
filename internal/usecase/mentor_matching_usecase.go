package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/profile"
	"mentor-match/internal/embedding"
	"mentor-match/internal/logger"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MentorMatchingConfig struct {
	SemanticWeight float64
	MinScore       float64
	CacheTTL       time.Duration
	MaxTrends      int
	Concurrency    int
	DefaultLimit   int
	MaxLimit       int
	EmbedTimeout   time.Duration
}

func DefaultMentorMatchingConfig() MentorMatchingConfig {
	return MentorMatchingConfig{
		SemanticWeight: 0.6,
		MinScore:       10.0,
		CacheTTL:       24 * time.Hour,
		MaxTrends:      matching.MaxTrendSummaries,
		Concurrency:    8,
		DefaultLimit:   10,
		MaxLimit:       100,
		EmbedTimeout:   10 * time.Second,
	}
}

type MatchNotifier interface {
	NotifyMatchesRefreshed(studentID uuid.UUID, count int)
}

type MentorMatchingUsecase interface {
	RankMentors(ctx context.Context, studentID uuid.UUID, limit int) ([]matching.MentorMatch, error)
	Invalidate(ctx context.Context, studentID uuid.UUID) error
	InvalidateAll(ctx context.Context) error
}

type MentorMatching struct {
	students repository.StudentProfileRepository
	mentors  repository.MentorRepository
	trends   repository.TopicTrendRepository
	embedder embedding.Embedder
	cache    MatchCache
	notifier MatchNotifier
	cfg      MentorMatchingConfig
	log      *zap.Logger
}

func NewMentorMatchingUsecase(
	students repository.StudentProfileRepository,
	mentors repository.MentorRepository,
	trends repository.TopicTrendRepository,
	embedder embedding.Embedder,
	cache MatchCache,
	notifier MatchNotifier,
	cfg MentorMatchingConfig,
	log *zap.Logger,
) *MentorMatching {
	def := DefaultMentorMatchingConfig()
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.MaxTrends <= 0 {
		cfg.MaxTrends = def.MaxTrends
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = def.EmbedTimeout
	}
	if embedder == nil {
		embedder = embedding.Disabled{}
	}
	if cache == nil {
		cache = noopMatchCache{}
	}

	return &MentorMatching{
		students: students,
		mentors:  mentors,
		trends:   trends,
		embedder: embedder,
		cache:    cache,
		notifier: notifier,
		cfg:      cfg,
		log:      logger.Component(log, "mentor_matching"),
	}
}

func (u *MentorMatching) normalizeLimit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultLimit
	}
	if limit > u.cfg.MaxLimit {
		return u.cfg.MaxLimit
	}
	return limit
}

// RankMentors returns the student's mentors ordered by composite score. The
// full ranked list is cached per student; both cache hits and fresh results
// are cut to limit.
func (u *MentorMatching) RankMentors(ctx context.Context, studentID uuid.UUID, limit int) ([]matching.MentorMatch, error) {
	if studentID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit = u.normalizeLimit(limit)
	log := u.log.With(logger.StudentID(studentID))
	key := MentorMatchesCacheKey(studentID)

	var cached []matching.MentorMatch
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		log.Warn("match cache read failed", zap.Error(err))
	}
	if err == nil && hit {
		log.Debug("match cache hit", zap.Int("count", len(cached)))
		return truncateMatches(cached, limit), nil
	}

	student, err := u.students.FindByUserID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentProfileNotFound) {
			return nil, ErrStudentProfileNotFound
		}
		log.Error("load student profile", zap.Error(err))
		return nil, ErrInternal
	}

	mentors, err := u.mentors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMentorPopulation, err)
	}

	ranked := u.rank(ctx, log, &student, mentors)

	if err := u.cache.SetJSON(ctx, key, ranked, u.cfg.CacheTTL); err != nil {
		log.Warn("match cache write failed", zap.Error(err))
	}
	if u.notifier != nil {
		u.notifier.NotifyMatchesRefreshed(studentID, len(ranked))
	}

	log.Info("mentor ranking computed",
		zap.Int("population", len(mentors)),
		zap.Int("ranked", len(ranked)),
	)
	return truncateMatches(ranked, limit), nil
}

type scoredMentor struct {
	similarity float64
	alignment  float64
	final      float64
}

func (u *MentorMatching) rank(ctx context.Context, log *zap.Logger, student *profile.Student, mentors []profile.Mentor) []matching.MentorMatch {
	candidates := make([]profile.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if !matching.PassesDomainFilter(student.Major, m.PreferredBackgrounds) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return []matching.MentorMatch{}
	}

	u.attachTrends(ctx, log, candidates)

	studentVec := u.embed(ctx, log, matching.StudentSemanticText(student))

	scored := make([]scoredMentor, len(candidates))
	var g errgroup.Group
	g.SetLimit(u.cfg.Concurrency)
	for i := range candidates {
		g.Go(func() error {
			m := &candidates[i]
			var sim float64
			if studentVec != nil {
				mentorVec := u.embed(ctx, log.With(logger.MentorID(m.ID)), matching.MentorSemanticText(m))
				sim = matching.CosineSimilarity(studentVec, mentorVec)
			}
			align := matching.AlignmentScore(student, m)
			scored[i] = scoredMentor{
				similarity: sim,
				alignment:  align,
				final:      matching.CombineScores(matching.SemanticScore(sim), align, u.cfg.SemanticWeight),
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]matching.MentorMatch, 0, len(candidates))
	for i := range candidates {
		s := scored[i]
		if s.final <= u.cfg.MinScore {
			continue
		}
		mm := matching.NewMentorMatch(student, &candidates[i], s.similarity, s.alignment, s.final)
		if len(mm.Trends) > u.cfg.MaxTrends {
			mm.Trends = mm.Trends[:u.cfg.MaxTrends]
		}
		out = append(out, mm)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	return out
}

// attachTrends is best effort: a mentor without trends is still ranked.
func (u *MentorMatching) attachTrends(ctx context.Context, log *zap.Logger, mentors []profile.Mentor) {
	if u.trends == nil {
		return
	}
	ids := make([]uuid.UUID, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.ID)
	}
	byMentor, err := u.trends.FindByMentorIDs(ctx, ids)
	if err != nil {
		log.Warn("load topic trends", zap.Error(err))
		return
	}
	for i := range mentors {
		if t, ok := byMentor[mentors[i].ID]; ok {
			mentors[i].TopicTrends = t
		}
	}
}

// embed returns nil when the text is empty or the provider fails. Calls are
// detached from caller cancellation and bounded by EmbedTimeout.
func (u *MentorMatching) embed(ctx context.Context, log *zap.Logger, text string) []float64 {
	if text == "" {
		return nil
	}
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.EmbedTimeout)
	defer cancel()

	vec, err := u.embedder.Embed(cctx, text)
	if err != nil {
		if !errors.Is(err, embedding.ErrUnavailable) {
			log.Warn("embedding failed", zap.Error(err))
		}
		return nil
	}
	return vec
}

func (u *MentorMatching) Invalidate(ctx context.Context, studentID uuid.UUID) error {
	if studentID == uuid.Nil {
		return ErrUnauthorized
	}
	return u.cache.Delete(ctx, MentorMatchesCacheKey(studentID))
}

func (u *MentorMatching) InvalidateAll(ctx context.Context) error {
	return u.cache.DeleteByPattern(ctx, MentorMatchesCachePattern())
}

func truncateMatches(in []matching.MentorMatch, limit int) []matching.MentorMatch {
	if in == nil {
		return []matching.MentorMatch{}
	}
	if len(in) > limit {
		return in[:limit]
	}
	return in
}
