package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mentor-match/internal/domain/opportunity"
	"mentor-match/internal/domain/profile"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
)

type fakeStudentRepo struct {
	students map[uuid.UUID]profile.Student
	err      error
	updated  map[uuid.UUID]float64
}

func (f *fakeStudentRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Student, error) {
	if f.err != nil {
		return profile.Student{}, f.err
	}
	s, ok := f.students[userID]
	if !ok {
		return profile.Student{}, repository.ErrStudentProfileNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) UpdateReadiness(_ context.Context, userID uuid.UUID, score float64) error {
	if _, ok := f.students[userID]; !ok {
		return repository.ErrStudentProfileNotFound
	}
	if f.updated == nil {
		f.updated = map[uuid.UUID]float64{}
	}
	f.updated[userID] = score
	return nil
}

type fakeSkillRepo struct {
	ids map[uuid.UUID][]uuid.UUID
	err error
}

func (f fakeSkillRepo) FindSkillIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.ids[userID], f.err
}

type fakeMentorRepo struct {
	mentors []profile.Mentor
	err     error
	calls   atomic.Int32
}

func (f *fakeMentorRepo) ListActive(context.Context) ([]profile.Mentor, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]profile.Mentor, len(f.mentors))
	copy(out, f.mentors)
	return out, nil
}

func (f *fakeMentorRepo) FindByID(_ context.Context, id uuid.UUID) (profile.Mentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return profile.Mentor{}, repository.ErrMentorNotFound
}

type fakeTrendRepo struct {
	byMentor map[uuid.UUID][]profile.TopicTrend
	err      error
}

func (f fakeTrendRepo) FindByMentorIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]profile.TopicTrend, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMentor, nil
}

func (f fakeTrendRepo) ReplaceForMentor(context.Context, uuid.UUID, []profile.TopicTrend) error {
	return nil
}

// countingEmbedder maps known texts to fixed vectors and counts every call.
type countingEmbedder struct {
	vectors map[string][]float64
	fail    map[string]bool
	calls   atomic.Int32
}

func (e *countingEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	e.calls.Add(1)
	if e.fail[text] {
		return nil, errors.New("provider error")
	}
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0, 1}, nil
}

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	setTTLs []time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.setTTLs = append(c.setTTLs, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events map[uuid.UUID]int
}

func (n *recordingNotifier) NotifyMatchesRefreshed(studentID uuid.UUID, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.events == nil {
		n.events = map[uuid.UUID]int{}
	}
	n.events[studentID] = count
}

type fakeOpportunityRepo struct {
	items map[uuid.UUID]opportunity.Opportunity
	reqs  map[uuid.UUID][]opportunity.Requirement
}

func (f fakeOpportunityRepo) FindByID(_ context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	o, ok := f.items[id]
	if !ok {
		return opportunity.Opportunity{}, repository.ErrOpportunityNotFound
	}
	return o, nil
}

func (f fakeOpportunityRepo) FindRequirements(_ context.Context, id uuid.UUID) ([]opportunity.Requirement, error) {
	return f.reqs[id], nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items []opportunity.Application
}

func (f *fakeApplicationRepo) FindByStudentAndOpportunity(_ context.Context, studentID, opportunityID uuid.UUID) (opportunity.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.StudentUserID == studentID && a.OpportunityID == opportunityID {
			return a, nil
		}
	}
	return opportunity.Application{}, repository.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) Create(ctx context.Context, a opportunity.Application) (opportunity.Application, error) {
	if existing, err := f.FindByStudentAndOpportunity(ctx, a.StudentUserID, a.OpportunityID); err == nil {
		return existing, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a.CreatedAt = time.Now().UTC()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApplicationRepo) ListByOpportunity(_ context.Context, opportunityID uuid.UUID) ([]opportunity.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]opportunity.Application, 0)
	for _, a := range f.items {
		if a.OpportunityID == opportunityID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out, nil
}
