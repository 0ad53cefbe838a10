package profile

import (
	"time"

	"github.com/google/uuid"
)

const (
	MentorTypeAcademic = "academic_supervisor"
	MentorTypeIndustry = "industry_mentor"
)

const (
	AcceptingYes   = "Yes"
	AcceptingMaybe = "Maybe"
	AcceptingNo    = "No"
)

type Education struct {
	ID          uuid.UUID
	Institution string
	Degree      string
	Field       string
	StartYear   *int
	EndYear     *int
}

type Experience struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Description string
}

type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	URL         string
}

// Student is the candidate side of every score. Legacy single-field education
// (University, Degree) coexists with the structured Educations records.
type Student struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Email  string

	University string
	Degree     string
	Major      string

	Headline          string
	Bio               string
	ResearchInterests string
	PrimarySkills     string
	SecondarySkills   string
	IsPhDSeeker       bool

	GitHubURL   string
	LinkedInURL string
	ResumeURL   string
	WebsiteURL  string
	ScholarURL  string

	Educations  []Education
	Experiences []Experience
	Projects    []Project

	ReadinessScore float64
	UpdatedAt      time.Time
}

type TopicTrend struct {
	Topic      string `json:"topic"`
	Status     string `json:"status"`
	TotalCount int    `json:"count"`
	LastActive int    `json:"last_active,omitempty"`
}

type Mentor struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     string
	IsActive bool

	MentorType string
	University string
	Company    string
	Position   string
	LabName    string
	IsVerified bool

	Bio                  string
	ResearchAreas        string
	PreferredBackgrounds string
	MinExpectations      string
	AcceptingStudents    string
	PublicationsURL      string

	TopicTrends []TopicTrend
}

func (m Mentor) Institution() string {
	if m.University != "" {
		return m.University
	}
	return m.Company
}
