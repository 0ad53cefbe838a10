package dto

import (
	"mentor-match/internal/domain/matching"

	"github.com/google/uuid"
)

type MissingSkillResponse struct {
	Name       string `json:"name"`
	Weight     int    `json:"weight"`
	Importance string `json:"importance"`
}

type MatchResultResponse struct {
	Score               float64                `json:"score"`
	MatchedSkills       []string               `json:"matched_skills"`
	MissingSkills       []MissingSkillResponse `json:"missing_skills"`
	TotalRequiredSkills int                    `json:"total_required_skills"`
	MatchedCount        int                    `json:"matched_count"`
	Details             string                 `json:"details,omitempty"`
}

func NewMatchResultResponse(r matching.MatchResult) MatchResultResponse {
	out := MatchResultResponse{
		Score:               r.Score,
		MatchedSkills:       r.MatchedSkills,
		MissingSkills:       make([]MissingSkillResponse, 0, len(r.MissingSkills)),
		TotalRequiredSkills: r.TotalRequiredSkills,
		MatchedCount:        r.MatchedCount,
		Details:             r.Details,
	}
	if out.MatchedSkills == nil {
		out.MatchedSkills = []string{}
	}
	for _, m := range r.MissingSkills {
		out.MissingSkills = append(out.MissingSkills, MissingSkillResponse{
			Name:       m.Name,
			Weight:     m.Weight,
			Importance: m.Importance,
		})
	}
	return out
}

type RequirementRequest struct {
	SkillID   string `json:"skill_id" validate:"required,uuid"`
	SkillName string `json:"skill_name" validate:"max=200"`
	Weight    int    `json:"weight" validate:"required,oneof=1 3 5"`
}

type PreviewScoreRequest struct {
	Requirements []RequirementRequest `json:"requirements" validate:"required,min=1,max=100,unique=SkillID,dive"`
}

// ToRequirements assumes the request passed validation.
func (r PreviewScoreRequest) ToRequirements() []matching.SkillRequirement {
	out := make([]matching.SkillRequirement, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		out = append(out, matching.SkillRequirement{
			SkillID:   uuid.MustParse(req.SkillID),
			SkillName: req.SkillName,
			Weight:    req.Weight,
		})
	}
	return out
}
