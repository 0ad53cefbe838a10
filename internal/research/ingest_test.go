package research

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mentor-match/internal/domain/profile"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mentorStore struct {
	mentors []profile.Mentor
	err     error
}

func (s *mentorStore) ListActive(context.Context) ([]profile.Mentor, error) {
	return s.mentors, s.err
}

func (s *mentorStore) FindByID(_ context.Context, id uuid.UUID) (profile.Mentor, error) {
	for _, m := range s.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return profile.Mentor{}, repository.ErrMentorNotFound
}

type trendStore struct {
	mu     sync.Mutex
	stored map[uuid.UUID][]profile.TopicTrend
	err    error
}

func (s *trendStore) FindByMentorIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]profile.TopicTrend, error) {
	return nil, nil
}

func (s *trendStore) ReplaceForMentor(_ context.Context, id uuid.UUID, trends []profile.TopicTrend) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stored == nil {
		s.stored = map[uuid.UUID][]profile.TopicTrend{}
	}
	s.stored[id] = trends
	return nil
}

type pageFetcher struct {
	pages map[string][]Publication
	calls atomic.Int32
}

func (f *pageFetcher) FetchPublications(_ context.Context, pageURL string) ([]Publication, error) {
	f.calls.Add(1)
	pubs, ok := f.pages[pageURL]
	if !ok {
		return nil, ErrNoPublications
	}
	return pubs, nil
}

type countingInvalidator struct{ calls atomic.Int32 }

func (c *countingInvalidator) InvalidateAll(context.Context) error {
	c.calls.Add(1)
	return nil
}

type trendsRecorder struct {
	mu     sync.Mutex
	topics map[uuid.UUID]int
}

func (r *trendsRecorder) NotifyTrendsUpdated(id uuid.UUID, topics int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.topics == nil {
		r.topics = map[uuid.UUID]int{}
	}
	r.topics[id] = topics
}

type memoryLocker struct {
	mu      sync.Mutex
	down    bool
	failSet bool
	held    map[string]bool
	deleted []string
}

func (l *memoryLocker) Available() bool { return !l.down }

func (l *memoryLocker) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	if l.failSet {
		return false, errors.New("redis timeout")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = map[string]bool{}
	}
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *memoryLocker) Delete(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	l.deleted = append(l.deleted, key)
	return nil
}

type ingestFixture struct {
	lab, quiet, bare profile.Mentor
	mentors          *mentorStore
	trends           *trendStore
	fetcher          *pageFetcher
	invalidator      *countingInvalidator
	locker           *memoryLocker
	ingestor         *Ingestor
}

func newIngestFixture() *ingestFixture {
	f := &ingestFixture{
		lab: profile.Mentor{
			ID:              uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
			ResearchAreas:   "Graph Neural Networks, Robotics",
			PublicationsURL: "https://lab.example.edu/pubs",
		},
		quiet: profile.Mentor{
			ID:              uuid.MustParse("00000000-0000-0000-0000-0000000000a2"),
			ResearchAreas:   "Robotics",
			PublicationsURL: "https://quiet.example.edu/pubs",
		},
		bare: profile.Mentor{
			ID: uuid.MustParse("00000000-0000-0000-0000-0000000000a3"),
		},
		trends:      &trendStore{},
		invalidator: &countingInvalidator{},
		locker:      &memoryLocker{},
	}
	f.mentors = &mentorStore{mentors: []profile.Mentor{f.lab, f.quiet, f.bare}}
	f.fetcher = &pageFetcher{pages: map[string][]Publication{
		f.lab.PublicationsURL: {
			{Title: "Graph Neural Networks at scale", Year: 2026},
			{Title: "Robotics for warehouses", Year: 2019},
		},
		f.quiet.PublicationsURL: {
			{Title: "Robotics and control", Year: 2022},
		},
	}}
	f.ingestor = NewIngestor(f.mentors, f.trends, f.fetcher, f.invalidator, f.locker, IngestConfig{Workers: 2, LookbackYears: 3}, nil)
	f.ingestor.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestIngestor_Ingest(t *testing.T) {
	f := newIngestFixture()
	rec := &trendsRecorder{}
	f.ingestor.SetNotifier(rec)

	res, err := f.ingestor.Ingest(context.Background(), f.lab.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Publications)
	assert.Equal(t, []profile.TopicTrend{
		{Topic: "Graph Neural Networks", Status: StatusRising, TotalCount: 1, LastActive: 2026},
		{Topic: "Robotics", Status: StatusDeclining, TotalCount: 1, LastActive: 2019},
	}, res.Trends)
	assert.Equal(t, res.Trends, f.trends.stored[f.lab.ID])
	assert.Equal(t, int32(1), f.invalidator.calls.Load())
	assert.Equal(t, []string{ingestLockKey(f.lab.ID)}, f.locker.deleted)
	assert.Empty(t, f.locker.held)
	assert.Equal(t, map[uuid.UUID]int{f.lab.ID: 2}, rec.topics)
}

func TestIngestor_IngestErrors(t *testing.T) {
	f := newIngestFixture()
	ctx := context.Background()

	_, err := f.ingestor.Ingest(ctx, f.bare.ID)
	assert.ErrorIs(t, err, ErrNoPublicationsURL)

	_, err = f.ingestor.Ingest(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrMentorNotFound)

	f.locker.held = map[string]bool{ingestLockKey(f.lab.ID): true}
	_, err = f.ingestor.Ingest(ctx, f.lab.ID)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, int32(0), f.fetcher.calls.Load())

	f.locker.held = nil
	f.trends.err = errors.New("db down")
	_, err = f.ingestor.Ingest(ctx, f.lab.ID)
	assert.ErrorContains(t, err, "store trends")
	assert.Equal(t, int32(0), f.invalidator.calls.Load())

	f.trends.err = nil
	f.fetcher.pages = nil
	_, err = f.ingestor.Ingest(ctx, f.lab.ID)
	assert.ErrorIs(t, err, ErrNoPublications)
}

func TestIngestor_LockerDegraded(t *testing.T) {
	f := newIngestFixture()
	ctx := context.Background()

	f.locker.down = true
	_, err := f.ingestor.Ingest(ctx, f.lab.ID)
	require.NoError(t, err)
	assert.Empty(t, f.locker.deleted)

	f.locker.down = false
	f.locker.failSet = true
	_, err = f.ingestor.Ingest(ctx, f.lab.ID)
	require.NoError(t, err)
	assert.Empty(t, f.locker.deleted)
}

func TestIngestor_IngestAll(t *testing.T) {
	f := newIngestFixture()

	n, err := f.ingestor.IngestAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, f.trends.stored, 2)
	assert.Equal(t, StatusDeclining, f.trends.stored[f.quiet.ID][0].Status)
}

func TestIngestor_IngestAllJoinsErrors(t *testing.T) {
	f := newIngestFixture()
	delete(f.fetcher.pages, f.quiet.PublicationsURL)

	n, err := f.ingestor.IngestAll(context.Background())
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, ErrNoPublications)
	assert.ErrorContains(t, err, f.quiet.ID.String())
}

func TestIngestor_Enqueue(t *testing.T) {
	f := newIngestFixture()

	assert.ErrorIs(t, f.ingestor.Enqueue(f.lab.ID), ErrNotStarted)

	f.ingestor.Start(context.Background())
	require.NoError(t, f.ingestor.Enqueue(f.lab.ID))
	require.NoError(t, f.ingestor.Enqueue(f.quiet.ID))
	f.ingestor.Stop()
	f.ingestor.Stop()

	f.trends.mu.Lock()
	defer f.trends.mu.Unlock()
	assert.Len(t, f.trends.stored, 2)
	assert.ErrorIs(t, f.ingestor.Enqueue(f.lab.ID), ErrNotStarted)
}

type blockingFetcher struct{ started atomic.Int32 }

func (f *blockingFetcher) FetchPublications(ctx context.Context, _ string) ([]Publication, error) {
	f.started.Add(1)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestIngestor_IngestAllStopsSubmittingOnCancel(t *testing.T) {
	mentors := make([]profile.Mentor, 0, 50)
	for i := 0; i < 50; i++ {
		mentors = append(mentors, profile.Mentor{
			ID:              uuid.New(),
			PublicationsURL: fmt.Sprintf("https://lab%d.example.edu/pubs", i),
		})
	}
	fetcher := &blockingFetcher{}
	ing := NewIngestor(&mentorStore{mentors: mentors}, &trendStore{}, fetcher, &countingInvalidator{}, &memoryLocker{}, IngestConfig{Workers: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	type outcome struct {
		n   int
		err error
	}
	finished := make(chan outcome, 1)
	go func() {
		n, err := ing.IngestAll(ctx)
		finished <- outcome{n: n, err: err}
	}()

	select {
	case got := <-finished:
		assert.ErrorIs(t, got.err, context.DeadlineExceeded)
		assert.Zero(t, got.n)
		assert.Less(t, int(fetcher.started.Load()), len(mentors))
	case <-time.After(2 * time.Second):
		t.Fatal("IngestAll did not return after the context expired")
	}
}
