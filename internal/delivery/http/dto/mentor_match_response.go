package dto

import (
	"mentor-match/internal/domain/matching"

	"github.com/google/uuid"
)

type ListMentorMatchesQuery struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}

type TrendResponse struct {
	Topic  string `json:"topic"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MentorMatchResponse struct {
	MentorID          uuid.UUID       `json:"mentor_id"`
	MentorName        string          `json:"mentor_name"`
	MentorType        string          `json:"mentor_type"`
	Institution       string          `json:"institution"`
	Position          string          `json:"position"`
	MatchScore        int             `json:"match_score"`
	SemanticScore     int             `json:"semantic_score"`
	AlignmentScore    int             `json:"alignment_score"`
	Explanation       string          `json:"explanation"`
	ResearchAreas     string          `json:"research_areas"`
	AcceptingStudents string          `json:"accepting_students"`
	Trends            []TrendResponse `json:"trends"`
}

func NewMentorMatchResponses(in []matching.MentorMatch) []MentorMatchResponse {
	out := make([]MentorMatchResponse, 0, len(in))
	for _, m := range in {
		trends := make([]TrendResponse, 0, len(m.Trends))
		for _, t := range m.Trends {
			trends = append(trends, TrendResponse{Topic: t.Topic, Status: t.Status, Count: t.Count})
		}
		out = append(out, MentorMatchResponse{
			MentorID:          m.MentorID,
			MentorName:        m.MentorName,
			MentorType:        m.MentorType,
			Institution:       m.Institution,
			Position:          m.Position,
			MatchScore:        m.MatchScore,
			SemanticScore:     m.SemanticScore,
			AlignmentScore:    m.AlignmentScore,
			Explanation:       m.Explanation,
			ResearchAreas:     m.ResearchAreas,
			AcceptingStudents: m.AcceptingStudents,
			Trends:            trends,
		})
	}
	return out
}
