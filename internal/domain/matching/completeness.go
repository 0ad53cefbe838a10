package matching

import (
	"strings"
	"unicode/utf8"

	"mentor-match/internal/domain/profile"
)

func StudentCompleteness(s *profile.Student, skillCount int) int {
	if s == nil {
		return 0
	}
	score := 0
	if strings.TrimSpace(s.University) != "" || len(s.Educations) > 0 {
		score += 15
	}
	if strings.TrimSpace(s.Degree) != "" {
		score += 15
	}
	if strings.TrimSpace(s.Major) != "" {
		score += 15
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Bio)) > 20 {
		score += 15
	}
	if strings.TrimSpace(s.GitHubURL) != "" {
		score += 20
	}
	if skillCount > 0 {
		score += 20
	}
	return min(score, 100)
}

func MentorCompleteness(m *profile.Mentor) int {
	if m == nil {
		return 0
	}
	score := 0
	if strings.TrimSpace(m.LabName) != "" {
		score += 15
	}
	if strings.TrimSpace(m.University) != "" {
		score += 15
	}
	if strings.TrimSpace(m.Position) != "" {
		score += 15
	}
	if utf8.RuneCountInString(strings.TrimSpace(m.Bio)) > 20 {
		score += 15
	}
	if strings.TrimSpace(m.ResearchAreas) != "" {
		score += 20
	}
	if m.IsVerified {
		score += 20
	}
	return min(score, 100)
}
