package usecase

import (
	"context"
	"testing"

	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/opportunity"
	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type applicationsFixture struct {
	mentorUser uuid.UUID
	oppID      uuid.UUID
	closedID   uuid.UUID
	python     uuid.UUID
	sql        uuid.UUID

	opps   fakeOpportunityRepo
	apps   *fakeApplicationRepo
	skills fakeSkillRepo
	uc     *Applications
}

func newApplicationsFixture() *applicationsFixture {
	f := &applicationsFixture{
		mentorUser: uuid.New(),
		oppID:      uuid.New(),
		closedID:   uuid.New(),
		python:     uuid.New(),
		sql:        uuid.New(),
		apps:       &fakeApplicationRepo{},
		skills:     fakeSkillRepo{ids: map[uuid.UUID][]uuid.UUID{}},
	}
	mentorID := uuid.New()

	f.opps = fakeOpportunityRepo{
		items: map[uuid.UUID]opportunity.Opportunity{
			f.oppID:    {ID: f.oppID, MentorID: mentorID, Title: "Data Engineering RA", IsActive: true},
			f.closedID: {ID: f.closedID, MentorID: mentorID, Title: "Closed", IsActive: false},
		},
		reqs: map[uuid.UUID][]opportunity.Requirement{
			f.oppID: {
				{SkillID: f.python, SkillName: "Python", Weight: 5},
				{SkillID: f.sql, SkillName: "SQL", Weight: 3},
			},
		},
	}
	mentors := &fakeMentorRepo{mentors: []profile.Mentor{{ID: mentorID, UserID: f.mentorUser}}}

	f.uc = NewApplicationsUsecase(f.opps, f.apps, f.skills, mentors, nil)
	return f
}

func TestApplications_ScoreForOpportunity(t *testing.T) {
	f := newApplicationsFixture()
	student := uuid.New()
	f.skills.ids[student] = []uuid.UUID{f.python}

	res, err := f.uc.ScoreForOpportunity(context.Background(), student, f.oppID)
	require.NoError(t, err)
	assert.Equal(t, 62.5, res.Score)
	assert.Equal(t, []string{"Python"}, res.MatchedSkills)
	require.Len(t, res.MissingSkills, 1)
	assert.Equal(t, "SQL", res.MissingSkills[0].Name)
}

func TestApplications_PreviewScore(t *testing.T) {
	f := newApplicationsFixture()
	student := uuid.New()
	f.skills.ids[student] = []uuid.UUID{f.sql}

	res, err := f.uc.PreviewScore(context.Background(), student, []matching.SkillRequirement{
		{SkillID: f.python, SkillName: "Python", Weight: 1},
		{SkillID: f.sql, SkillName: "SQL", Weight: 9},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	res, err = f.uc.PreviewScore(context.Background(), student, []matching.SkillRequirement{
		{SkillID: f.python, SkillName: "Python", Weight: 1},
		{SkillID: f.sql, SkillName: "SQL", Weight: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, res.Score)

	_, err = f.uc.PreviewScore(context.Background(), uuid.Nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestApplications_PreviewScoreRejectsRepeatedSkill(t *testing.T) {
	f := newApplicationsFixture()
	student := uuid.New()
	f.skills.ids[student] = []uuid.UUID{f.python}

	_, err := f.uc.PreviewScore(context.Background(), student, []matching.SkillRequirement{
		{SkillID: f.python, SkillName: "Python", Weight: 5},
		{SkillID: f.python, SkillName: "Python", Weight: 5},
		{SkillID: f.sql, SkillName: "SQL", Weight: 5},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplications_ScoreWithoutRequirements(t *testing.T) {
	f := newApplicationsFixture()

	res, err := f.uc.ScoreForOpportunity(context.Background(), uuid.New(), f.closedID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, matching.NoRequirementsDetails, res.Details)
}

func TestApplications_ScoreErrors(t *testing.T) {
	f := newApplicationsFixture()

	_, err := f.uc.ScoreForOpportunity(context.Background(), uuid.Nil, f.oppID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.uc.ScoreForOpportunity(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
}

func TestApplications_ApplyFreezesSnapshot(t *testing.T) {
	f := newApplicationsFixture()
	ctx := context.Background()
	student := uuid.New()
	f.skills.ids[student] = []uuid.UUID{f.python}

	first, err := f.uc.Apply(ctx, student, f.oppID)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 62.5, first.MatchScore)
	assert.Equal(t, 62.5, first.Match.Score)
	assert.Equal(t, "pending", first.Status)

	// New skills after applying do not change the stored snapshot.
	f.skills.ids[student] = []uuid.UUID{f.python, f.sql}

	again, err := f.uc.Apply(ctx, student, f.oppID)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 62.5, again.MatchScore)
	assert.Len(t, f.apps.items, 1)

	live, err := f.uc.ScoreForOpportunity(ctx, student, f.oppID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, live.Score)
}

func TestApplications_ApplyClosedOpportunity(t *testing.T) {
	f := newApplicationsFixture()

	_, err := f.uc.Apply(context.Background(), uuid.New(), f.closedID)
	assert.ErrorIs(t, err, ErrOpportunityClosed)
}

func TestApplications_ListForOpportunity(t *testing.T) {
	f := newApplicationsFixture()
	ctx := context.Background()

	weak, strong := uuid.New(), uuid.New()
	f.skills.ids[strong] = []uuid.UUID{f.python, f.sql}
	f.skills.ids[weak] = []uuid.UUID{f.sql}

	_, err := f.uc.Apply(ctx, weak, f.oppID)
	require.NoError(t, err)
	_, err = f.uc.Apply(ctx, strong, f.oppID)
	require.NoError(t, err)

	list, err := f.uc.ListForOpportunity(ctx, f.mentorUser, f.oppID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, strong, list[0].StudentUserID)
	assert.Equal(t, 100.0, list[0].MatchScore)
	assert.Equal(t, weak, list[1].StudentUserID)
	assert.Equal(t, 37.5, list[1].MatchScore)
	assert.Len(t, list[1].Match.MissingSkills, 1)

	_, err = f.uc.ListForOpportunity(ctx, uuid.New(), f.oppID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplications_CorruptSnapshotIsLogged(t *testing.T) {
	f := newApplicationsFixture()
	core, logs := observer.New(zap.WarnLevel)
	f.uc = NewApplicationsUsecase(f.opps, f.apps, f.skills, f.uc.mentors, zap.New(core))

	student := uuid.New()
	f.apps.items = append(f.apps.items, opportunity.Application{
		ID:            uuid.New(),
		StudentUserID: student,
		OpportunityID: f.oppID,
		MatchScore:    50,
		MatchDetails:  []byte(`{"score":`),
	})

	list, err := f.uc.ListForOpportunity(context.Background(), f.mentorUser, f.oppID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 50.0, list[0].MatchScore)
	assert.Empty(t, list[0].Match.MatchedSkills)
	assert.NotNil(t, list[0].Match.MissingSkills)

	require.Equal(t, 1, logs.FilterMessage("decode application match details").Len())
}
