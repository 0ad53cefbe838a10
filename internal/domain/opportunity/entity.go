package opportunity

import (
	"time"

	"github.com/google/uuid"
)

type Opportunity struct {
	ID          uuid.UUID
	MentorID    uuid.UUID
	Title       string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

type Requirement struct {
	SkillID   uuid.UUID
	SkillName string
	Weight    int
}

// Application carries the score snapshot frozen when the student applied.
type Application struct {
	ID            uuid.UUID
	StudentUserID uuid.UUID
	OpportunityID uuid.UUID
	StudentName   string
	Status        string
	MatchScore    float64
	MatchDetails  []byte
	CreatedAt     time.Time
}
