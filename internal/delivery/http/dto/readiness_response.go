package dto

import (
	"mentor-match/internal/usecase"

	"github.com/google/uuid"
)

type ReadinessBreakdownResponse struct {
	Education     float64 `json:"education"`
	ProfileBasics float64 `json:"profile_basics"`
	Skills        float64 `json:"skills"`
	Experience    float64 `json:"experience"`
}

type ReadinessResponse struct {
	StudentID    uuid.UUID                  `json:"student_id"`
	Score        float64                    `json:"score"`
	StoredScore  float64                    `json:"stored_score"`
	Completeness int                        `json:"profile_completeness"`
	Breakdown    ReadinessBreakdownResponse `json:"breakdown"`
}

func NewReadinessResponse(r usecase.ReadinessReport) ReadinessResponse {
	return ReadinessResponse{
		StudentID:    r.StudentID,
		Score:        r.Score,
		StoredScore:  r.StoredScore,
		Completeness: r.Completeness,
		Breakdown: ReadinessBreakdownResponse{
			Education:     r.Breakdown.Education,
			ProfileBasics: r.Breakdown.ProfileBasics,
			Skills:        r.Breakdown.Skills,
			Experience:    r.Breakdown.Experience,
		},
	}
}
