package usecase

import (
	"context"
	"errors"
	"testing"

	"mentor-match/internal/domain/profile"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/research"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type recordingQueue struct {
	queued []uuid.UUID
	err    error
}

func (q *recordingQueue) Enqueue(id uuid.UUID) error {
	if q.err != nil {
		return q.err
	}
	q.queued = append(q.queued, id)
	return nil
}

func TestTrends_RequestIngest(t *testing.T) {
	owner := uuid.New()
	withURL := profile.Mentor{ID: uuid.New(), UserID: owner, PublicationsURL: "https://lab.example.edu/pubs"}
	withoutURL := profile.Mentor{ID: uuid.New(), UserID: owner}
	mentors := &fakeMentorRepo{mentors: []profile.Mentor{withURL, withoutURL}}
	ctx := context.Background()

	tests := []struct {
		name     string
		caller   uuid.UUID
		role     string
		mentorID uuid.UUID
		queueErr error
		want     error
	}{
		{name: "owner", caller: owner, role: jwt.RoleMentor, mentorID: withURL.ID},
		{name: "admin", caller: uuid.New(), role: jwt.RoleAdmin, mentorID: withURL.ID},
		{name: "other mentor", caller: uuid.New(), role: jwt.RoleMentor, mentorID: withURL.ID, want: ErrForbidden},
		{name: "student", caller: owner, role: jwt.RoleStudent, mentorID: withURL.ID, want: ErrForbidden},
		{name: "anonymous", caller: uuid.Nil, role: jwt.RoleAdmin, mentorID: withURL.ID, want: ErrUnauthorized},
		{name: "unknown mentor", caller: owner, role: jwt.RoleAdmin, mentorID: uuid.New(), want: ErrMentorNotFound},
		{name: "no url", caller: owner, role: jwt.RoleMentor, mentorID: withoutURL.ID, want: ErrNoPublicationsURL},
		{name: "queue full", caller: owner, role: jwt.RoleMentor, mentorID: withURL.ID, queueErr: research.ErrQueueFull, want: ErrIngestBusy},
		{name: "not started", caller: owner, role: jwt.RoleMentor, mentorID: withURL.ID, queueErr: research.ErrNotStarted, want: ErrIngestUnavailable},
		{name: "queue error", caller: owner, role: jwt.RoleMentor, mentorID: withURL.ID, queueErr: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQueue{err: tt.queueErr}
			err := NewTrendsUsecase(mentors, q, nil).RequestIngest(ctx, tt.caller, tt.role, tt.mentorID)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Empty(t, q.queued)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, []uuid.UUID{tt.mentorID}, q.queued)
		})
	}
}
