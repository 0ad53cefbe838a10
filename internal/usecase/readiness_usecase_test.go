package usecase

import (
	"context"
	"testing"

	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	ids []uuid.UUID
}

func (r *recordingInvalidator) Invalidate(_ context.Context, id uuid.UUID) error {
	r.ids = append(r.ids, id)
	return nil
}

func newReadinessFixture() (uuid.UUID, *fakeStudentRepo, fakeSkillRepo) {
	id := uuid.New()
	students := &fakeStudentRepo{students: map[uuid.UUID]profile.Student{
		id: {
			UserID:         id,
			University:     "TU Delft",
			Degree:         "MSc",
			Major:          "Computer Science",
			Bio:            "Interested in distributed databases and consensus",
			GitHubURL:      "https://github.com/x",
			ReadinessScore: 12,
		},
	}}
	skills := fakeSkillRepo{ids: map[uuid.UUID][]uuid.UUID{id: {uuid.New()}}}
	return id, students, skills
}

func TestReadiness_GetComputesFresh(t *testing.T) {
	id, students, skills := newReadinessFixture()
	uc := NewReadinessUsecase(students, skills, nil, nil)

	rep, err := uc.Get(context.Background(), id)
	require.NoError(t, err)

	// education 30, summary 10 + one link 5, one skill 15
	assert.Equal(t, 60.0, rep.Score)
	assert.Equal(t, 30.0, rep.Breakdown.Education)
	assert.Equal(t, 15.0, rep.Breakdown.ProfileBasics)
	assert.Equal(t, 15.0, rep.Breakdown.Skills)
	assert.Equal(t, 12.0, rep.StoredScore)
	assert.Equal(t, 100, rep.Completeness)
	assert.Empty(t, students.updated)
}

func TestReadiness_RefreshPersistsAndInvalidates(t *testing.T) {
	id, students, skills := newReadinessFixture()
	inv := &recordingInvalidator{}
	uc := NewReadinessUsecase(students, skills, inv, nil)

	rep, err := uc.Refresh(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 60.0, rep.StoredScore)
	assert.Equal(t, 60.0, students.updated[id])
	assert.Equal(t, []uuid.UUID{id}, inv.ids)
}

func TestReadiness_Errors(t *testing.T) {
	_, students, skills := newReadinessFixture()
	uc := NewReadinessUsecase(students, skills, nil, nil)

	_, err := uc.Get(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Refresh(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStudentProfileNotFound)
}
