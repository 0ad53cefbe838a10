package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/opportunity"
	"mentor-match/internal/logger"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplicationSnapshot is an application with the match result frozen when it
// was submitted.
type ApplicationSnapshot struct {
	ID            uuid.UUID
	StudentUserID uuid.UUID
	StudentName   string
	OpportunityID uuid.UUID
	Status        string
	MatchScore    float64
	Match         matching.MatchResult
	CreatedAt     time.Time
	Created       bool
}

type ApplicationsUsecase interface {
	ScoreForOpportunity(ctx context.Context, studentID, opportunityID uuid.UUID) (matching.MatchResult, error)
	PreviewScore(ctx context.Context, studentID uuid.UUID, reqs []matching.SkillRequirement) (matching.MatchResult, error)
	Apply(ctx context.Context, studentID, opportunityID uuid.UUID) (ApplicationSnapshot, error)
	ListForOpportunity(ctx context.Context, callerID, opportunityID uuid.UUID) ([]ApplicationSnapshot, error)
}

type Applications struct {
	opportunities repository.OpportunityRepository
	applications  repository.ApplicationRepository
	studentSkills repository.StudentSkillRepository
	mentors       repository.MentorRepository
	log           *zap.Logger
}

func NewApplicationsUsecase(
	opportunities repository.OpportunityRepository,
	applications repository.ApplicationRepository,
	studentSkills repository.StudentSkillRepository,
	mentors repository.MentorRepository,
	log *zap.Logger,
) *Applications {
	return &Applications{
		opportunities: opportunities,
		applications:  applications,
		studentSkills: studentSkills,
		mentors:       mentors,
		log:           logger.Component(log, "applications"),
	}
}

func (u *Applications) loadOpportunity(ctx context.Context, opportunityID uuid.UUID) (opportunity.Opportunity, error) {
	if opportunityID == uuid.Nil {
		return opportunity.Opportunity{}, ErrOpportunityNotFound
	}
	o, err := u.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		u.log.Error("load opportunity", logger.OpportunityID(opportunityID), zap.Error(err))
		return opportunity.Opportunity{}, ErrInternal
	}
	return o, nil
}

func (u *Applications) skillsOf(ctx context.Context, studentID uuid.UUID) (matching.CandidateSkillSet, error) {
	ids, err := u.studentSkills.FindSkillIDs(ctx, studentID)
	if err != nil {
		u.log.Error("load student skills", logger.StudentID(studentID), zap.Error(err))
		return nil, ErrInternal
	}
	return matching.NewCandidateSkillSet(ids...), nil
}

func (u *Applications) score(ctx context.Context, studentID, opportunityID uuid.UUID) (matching.MatchResult, error) {
	skills, err := u.skillsOf(ctx, studentID)
	if err != nil {
		return matching.MatchResult{}, err
	}
	reqs, err := u.opportunities.FindRequirements(ctx, opportunityID)
	if err != nil {
		u.log.Error("load requirements", logger.OpportunityID(opportunityID), zap.Error(err))
		return matching.MatchResult{}, ErrInternal
	}

	engineReqs := make([]matching.SkillRequirement, 0, len(reqs))
	for _, r := range reqs {
		engineReqs = append(engineReqs, matching.SkillRequirement{
			SkillID:   r.SkillID,
			SkillName: r.SkillName,
			Weight:    r.Weight,
		})
	}
	return matching.ScoreApplication(skills, engineReqs), nil
}

func (u *Applications) PreviewScore(ctx context.Context, studentID uuid.UUID, reqs []matching.SkillRequirement) (matching.MatchResult, error) {
	if studentID == uuid.Nil {
		return matching.MatchResult{}, ErrUnauthorized
	}
	seen := make(map[uuid.UUID]struct{}, len(reqs))
	for _, r := range reqs {
		if r.SkillID == uuid.Nil || !matching.IsValidWeight(r.Weight) {
			return matching.MatchResult{}, ErrInvalidInput
		}
		if _, dup := seen[r.SkillID]; dup {
			return matching.MatchResult{}, ErrInvalidInput
		}
		seen[r.SkillID] = struct{}{}
	}
	skills, err := u.skillsOf(ctx, studentID)
	if err != nil {
		return matching.MatchResult{}, err
	}
	return matching.ScoreApplication(skills, reqs), nil
}

func (u *Applications) ScoreForOpportunity(ctx context.Context, studentID, opportunityID uuid.UUID) (matching.MatchResult, error) {
	if studentID == uuid.Nil {
		return matching.MatchResult{}, ErrUnauthorized
	}
	if _, err := u.loadOpportunity(ctx, opportunityID); err != nil {
		return matching.MatchResult{}, err
	}
	return u.score(ctx, studentID, opportunityID)
}

// Apply records an application with a frozen score snapshot. Applying twice
// returns the first snapshot unchanged.
func (u *Applications) Apply(ctx context.Context, studentID, opportunityID uuid.UUID) (ApplicationSnapshot, error) {
	if studentID == uuid.Nil {
		return ApplicationSnapshot{}, ErrUnauthorized
	}
	o, err := u.loadOpportunity(ctx, opportunityID)
	if err != nil {
		return ApplicationSnapshot{}, err
	}

	existing, err := u.applications.FindByStudentAndOpportunity(ctx, studentID, opportunityID)
	switch {
	case err == nil:
		return u.toSnapshot(existing, false), nil
	case !errors.Is(err, repository.ErrApplicationNotFound):
		u.log.Error("load application", logger.StudentID(studentID), zap.Error(err))
		return ApplicationSnapshot{}, ErrInternal
	}

	if !o.IsActive {
		return ApplicationSnapshot{}, ErrOpportunityClosed
	}

	res, err := u.score(ctx, studentID, opportunityID)
	if err != nil {
		return ApplicationSnapshot{}, err
	}
	details, err := json.Marshal(res)
	if err != nil {
		return ApplicationSnapshot{}, ErrInternal
	}

	created, err := u.applications.Create(ctx, opportunity.Application{
		ID:            uuid.New(),
		StudentUserID: studentID,
		OpportunityID: opportunityID,
		Status:        "pending",
		MatchScore:    res.Score,
		MatchDetails:  details,
	})
	if err != nil {
		u.log.Error("create application", logger.StudentID(studentID), logger.OpportunityID(opportunityID), zap.Error(err))
		return ApplicationSnapshot{}, ErrInternal
	}

	u.log.Info("application submitted",
		logger.StudentID(studentID),
		logger.OpportunityID(opportunityID),
		zap.Float64("match_score", created.MatchScore),
	)
	return u.toSnapshot(created, true), nil
}

// ListForOpportunity returns the applicants ranked by their frozen score. Only
// the mentor owning the opportunity may list them.
func (u *Applications) ListForOpportunity(ctx context.Context, callerID, opportunityID uuid.UUID) ([]ApplicationSnapshot, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	o, err := u.loadOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	owner, err := u.mentors.FindByID(ctx, o.MentorID)
	if err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return nil, ErrForbidden
		}
		return nil, ErrInternal
	}
	if owner.UserID != callerID {
		return nil, ErrForbidden
	}

	apps, err := u.applications.ListByOpportunity(ctx, opportunityID)
	if err != nil {
		u.log.Error("list applications", logger.OpportunityID(opportunityID), zap.Error(err))
		return nil, ErrInternal
	}

	out := make([]ApplicationSnapshot, 0, len(apps))
	for _, a := range apps {
		out = append(out, u.toSnapshot(a, false))
	}
	return out, nil
}

func (u *Applications) toSnapshot(a opportunity.Application, created bool) ApplicationSnapshot {
	s := ApplicationSnapshot{
		ID:            a.ID,
		StudentUserID: a.StudentUserID,
		StudentName:   a.StudentName,
		OpportunityID: a.OpportunityID,
		Status:        a.Status,
		MatchScore:    a.MatchScore,
		CreatedAt:     a.CreatedAt,
		Created:       created,
	}
	if len(a.MatchDetails) > 0 {
		if err := json.Unmarshal(a.MatchDetails, &s.Match); err != nil {
			u.log.Warn("decode application match details",
				zap.String("application_id", a.ID.String()),
				zap.Error(err),
			)
			s.Match = matching.MatchResult{}
		}
	}
	if s.Match.MatchedSkills == nil {
		s.Match.MatchedSkills = []string{}
	}
	if s.Match.MissingSkills == nil {
		s.Match.MissingSkills = []matching.MissingSkill{}
	}
	return s
}
