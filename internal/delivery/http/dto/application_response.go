package dto

import (
	"time"

	"mentor-match/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID            uuid.UUID           `json:"id"`
	StudentUserID uuid.UUID           `json:"student_user_id"`
	StudentName   string              `json:"student_name,omitempty"`
	OpportunityID uuid.UUID           `json:"opportunity_id"`
	Status        string              `json:"status"`
	MatchScore    float64             `json:"match_score"`
	MatchDetails  MatchResultResponse `json:"match_details"`
	CreatedAt     time.Time           `json:"created_at"`
}

func NewApplicationResponse(s usecase.ApplicationSnapshot) ApplicationResponse {
	return ApplicationResponse{
		ID:            s.ID,
		StudentUserID: s.StudentUserID,
		StudentName:   s.StudentName,
		OpportunityID: s.OpportunityID,
		Status:        s.Status,
		MatchScore:    s.MatchScore,
		MatchDetails:  NewMatchResultResponse(s.Match),
		CreatedAt:     s.CreatedAt,
	}
}
