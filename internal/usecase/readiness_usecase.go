package usecase

import (
	"context"
	"errors"

	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/profile"
	"mentor-match/internal/logger"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReadinessReport struct {
	StudentID    uuid.UUID
	Score        float64
	Breakdown    matching.ReadinessBreakdown
	Completeness int
	StoredScore  float64
}

type MatchInvalidator interface {
	Invalidate(ctx context.Context, studentID uuid.UUID) error
}

type ReadinessUsecase interface {
	Get(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error)
	Refresh(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error)
}

type Readiness struct {
	students      repository.StudentProfileRepository
	studentSkills repository.StudentSkillRepository
	invalidator   MatchInvalidator
	policy        matching.ReadinessPolicy
	log           *zap.Logger
}

func NewReadinessUsecase(
	students repository.StudentProfileRepository,
	studentSkills repository.StudentSkillRepository,
	invalidator MatchInvalidator,
	log *zap.Logger,
) *Readiness {
	return &Readiness{
		students:      students,
		studentSkills: studentSkills,
		invalidator:   invalidator,
		policy:        matching.DefaultReadinessPolicy,
		log:           logger.Component(log, "readiness"),
	}
}

func (u *Readiness) load(ctx context.Context, studentID uuid.UUID) (profile.Student, []uuid.UUID, error) {
	if studentID == uuid.Nil {
		return profile.Student{}, nil, ErrUnauthorized
	}
	s, err := u.students.FindByUserID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentProfileNotFound) {
			return profile.Student{}, nil, ErrStudentProfileNotFound
		}
		u.log.Error("load student profile", logger.StudentID(studentID), zap.Error(err))
		return profile.Student{}, nil, ErrInternal
	}
	ids, err := u.studentSkills.FindSkillIDs(ctx, studentID)
	if err != nil {
		u.log.Error("load student skills", logger.StudentID(studentID), zap.Error(err))
		return profile.Student{}, nil, ErrInternal
	}
	return s, ids, nil
}

func (u *Readiness) report(s *profile.Student, ids []uuid.UUID) ReadinessReport {
	skills := matching.NewCandidateSkillSet(ids...)
	b := u.policy.Breakdown(s, skills)
	return ReadinessReport{
		StudentID:    s.UserID,
		Score:        b.Total,
		Breakdown:    b,
		Completeness: matching.StudentCompleteness(s, skills.Len()),
		StoredScore:  s.ReadinessScore,
	}
}

// Get always recomputes from the current profile; the stored score is
// reported alongside but never trusted.
func (u *Readiness) Get(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error) {
	s, ids, err := u.load(ctx, studentID)
	if err != nil {
		return ReadinessReport{}, err
	}
	return u.report(&s, ids), nil
}

func (u *Readiness) Refresh(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error) {
	s, ids, err := u.load(ctx, studentID)
	if err != nil {
		return ReadinessReport{}, err
	}
	rep := u.report(&s, ids)

	if err := u.students.UpdateReadiness(ctx, studentID, rep.Score); err != nil {
		if errors.Is(err, repository.ErrStudentProfileNotFound) {
			return ReadinessReport{}, ErrStudentProfileNotFound
		}
		u.log.Error("persist readiness", logger.StudentID(studentID), zap.Error(err))
		return ReadinessReport{}, ErrInternal
	}
	rep.StoredScore = rep.Score

	if u.invalidator != nil {
		if err := u.invalidator.Invalidate(ctx, studentID); err != nil {
			u.log.Warn("invalidate mentor matches", logger.StudentID(studentID), zap.Error(err))
		}
	}
	return rep, nil
}
