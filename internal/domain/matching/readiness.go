package matching

import (
	"strings"
	"unicode/utf8"

	"mentor-match/internal/domain/profile"
)

// ReadinessPolicy holds the bucket boundaries and point values of the readiness
// heuristic. The defaults are the contract; other values are for experiments.
type ReadinessPolicy struct {
	EducationPoints int

	SummaryPoints     int
	MinBioLength      int
	MinHeadlineLength int
	OneLinkPoints     int
	TwoLinkPoints     int

	SkillsFullPoints    int
	SkillsPartialPoints int
	SkillsFullCount     int
	SkillsPartialCount  int
	TextSkillsFullCount int
	TextSkillsPartCount int

	ExperiencePoints int
	ProjectPoints    int
}

var DefaultReadinessPolicy = ReadinessPolicy{
	EducationPoints: 30,

	SummaryPoints:     10,
	MinBioLength:      20,
	MinHeadlineLength: 5,
	OneLinkPoints:     5,
	TwoLinkPoints:     10,

	SkillsFullPoints:    30,
	SkillsPartialPoints: 15,
	SkillsFullCount:     3,
	SkillsPartialCount:  1,
	TextSkillsFullCount: 5,
	TextSkillsPartCount: 3,

	ExperiencePoints: 20,
	ProjectPoints:    15,
}

type ReadinessBreakdown struct {
	Education     float64 `json:"education"`
	ProfileBasics float64 `json:"profile_basics"`
	Skills        float64 `json:"skills"`
	Experience    float64 `json:"experience"`
	Total         float64 `json:"total"`
}

// ScoreReadiness returns the readiness score of a profile in [0,100].
// A nil profile scores 0.
func ScoreReadiness(p *profile.Student, skills CandidateSkillSet) float64 {
	return DefaultReadinessPolicy.Breakdown(p, skills).Total
}

func (rp ReadinessPolicy) Breakdown(p *profile.Student, skills CandidateSkillSet) ReadinessBreakdown {
	if p == nil {
		return ReadinessBreakdown{}
	}

	b := ReadinessBreakdown{
		Education:     float64(rp.education(p)),
		ProfileBasics: float64(rp.profileBasics(p)),
		Skills:        float64(rp.skills(p, skills)),
		Experience:    float64(rp.experience(p)),
	}
	b.Total = clampFloat(b.Education+b.ProfileBasics+b.Skills+b.Experience, 0, 100)
	return b
}

func (rp ReadinessPolicy) education(p *profile.Student) int {
	if len(p.Educations) > 0 {
		return rp.EducationPoints
	}
	if strings.TrimSpace(p.University) != "" && strings.TrimSpace(p.Degree) != "" {
		return rp.EducationPoints
	}
	return 0
}

func (rp ReadinessPolicy) profileBasics(p *profile.Student) int {
	pts := 0
	bio := strings.TrimSpace(p.Bio)
	headline := strings.TrimSpace(p.Headline)
	if utf8.RuneCountInString(bio) > rp.MinBioLength || utf8.RuneCountInString(headline) > rp.MinHeadlineLength {
		pts += rp.SummaryPoints
	}

	links := 0
	for _, l := range []string{p.GitHubURL, p.LinkedInURL, p.ResumeURL, p.WebsiteURL, p.ScholarURL} {
		if strings.TrimSpace(l) != "" {
			links++
		}
	}
	switch {
	case links >= 2:
		pts += rp.TwoLinkPoints
	case links == 1:
		pts += rp.OneLinkPoints
	}
	return pts
}

func (rp ReadinessPolicy) skills(p *profile.Student, skills CandidateSkillSet) int {
	pts := 0
	switch n := skills.Len(); {
	case n >= rp.SkillsFullCount:
		pts = rp.SkillsFullPoints
	case n >= rp.SkillsPartialCount:
		pts = rp.SkillsPartialPoints
	}

	textCount := len(splitCommaList(p.PrimarySkills)) + len(splitCommaList(p.SecondarySkills))
	fallback := 0
	switch {
	case textCount >= rp.TextSkillsFullCount:
		fallback = rp.SkillsFullPoints
	case textCount >= rp.TextSkillsPartCount:
		fallback = rp.SkillsPartialPoints
	}
	if fallback > pts {
		pts = fallback
	}
	return pts
}

func (rp ReadinessPolicy) experience(p *profile.Student) int {
	if len(p.Experiences) > 0 {
		return rp.ExperiencePoints
	}
	if len(p.Projects) > 0 {
		return rp.ProjectPoints
	}
	return 0
}
