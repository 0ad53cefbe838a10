package usecase

import (
	"context"
	"errors"
	"strings"

	"mentor-match/internal/logger"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/repository"
	"mentor-match/internal/research"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IngestQueue interface {
	Enqueue(mentorID uuid.UUID) error
}

type TrendsUsecase interface {
	RequestIngest(ctx context.Context, callerID uuid.UUID, role string, mentorID uuid.UUID) error
}

type Trends struct {
	mentors repository.MentorRepository
	queue   IngestQueue
	log     *zap.Logger
}

func NewTrendsUsecase(mentors repository.MentorRepository, queue IngestQueue, log *zap.Logger) *Trends {
	return &Trends{mentors: mentors, queue: queue, log: logger.Component(log, "trends")}
}

// RequestIngest queues a trend refresh. Admins may refresh any mentor; a
// mentor only their own profile.
func (u *Trends) RequestIngest(ctx context.Context, callerID uuid.UUID, role string, mentorID uuid.UUID) error {
	if callerID == uuid.Nil {
		return ErrUnauthorized
	}
	if role != jwt.RoleAdmin && role != jwt.RoleMentor {
		return ErrForbidden
	}

	m, err := u.mentors.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return ErrMentorNotFound
		}
		u.log.Error("load mentor", logger.MentorID(mentorID), zap.Error(err))
		return ErrInternal
	}
	if role != jwt.RoleAdmin && m.UserID != callerID {
		return ErrForbidden
	}
	if strings.TrimSpace(m.PublicationsURL) == "" {
		return ErrNoPublicationsURL
	}
	if u.queue == nil {
		return ErrIngestUnavailable
	}

	if err := u.queue.Enqueue(mentorID); err != nil {
		switch {
		case errors.Is(err, research.ErrQueueFull):
			return ErrIngestBusy
		case errors.Is(err, research.ErrNotStarted):
			return ErrIngestUnavailable
		default:
			u.log.Error("enqueue ingest", logger.MentorID(mentorID), zap.Error(err))
			return ErrInternal
		}
	}
	u.log.Info("trend ingest queued", logger.MentorID(mentorID), zap.String("requested_by", callerID.String()))
	return nil
}
