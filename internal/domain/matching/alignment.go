package matching

import (
	"strings"

	"mentor-match/internal/domain/profile"
)

const (
	AcademicFitPoints        = 10.0
	AcademicFitPartialPoints = 5.0
	SkillOverlapPoints       = 20.0
	AvailabilityPoints       = 10.0
	AvailabilityMaybePoints  = 5.0

	MaxAlignmentScore = AcademicFitPoints + SkillOverlapPoints + AvailabilityPoints
)

// AlignmentScore combines academic-track fit, expected-skill overlap and mentor
// availability into a score in [0, MaxAlignmentScore].
func AlignmentScore(s *profile.Student, m *profile.Mentor) float64 {
	if s == nil || m == nil {
		return 0
	}
	return academicFit(s, m) + skillOverlap(s, m) + availability(m)
}

func academicFit(s *profile.Student, m *profile.Mentor) float64 {
	if isAcademic(m) {
		if s.IsPhDSeeker {
			return AcademicFitPoints
		}
		if strings.Contains(strings.ToLower(s.Degree), "master") {
			return AcademicFitPartialPoints
		}
		return 0
	}
	if len(s.Projects) > 0 {
		return AcademicFitPoints
	}
	return 0
}

func skillOverlap(s *profile.Student, m *profile.Mentor) float64 {
	expected := toSet(splitCommaList(m.MinExpectations))
	if len(expected) == 0 {
		return SkillOverlapPoints
	}

	held := toSet(splitCommaList(s.PrimarySkills))
	overlap := 0
	for skill := range expected {
		if _, ok := held[skill]; ok {
			overlap++
		}
	}
	return SkillOverlapPoints * float64(overlap) / float64(len(expected))
}

func availability(m *profile.Mentor) float64 {
	switch {
	case strings.EqualFold(strings.TrimSpace(m.AcceptingStudents), profile.AcceptingYes):
		return AvailabilityPoints
	case strings.EqualFold(strings.TrimSpace(m.AcceptingStudents), profile.AcceptingMaybe):
		return AvailabilityMaybePoints
	default:
		return 0
	}
}

func isAcademic(m *profile.Mentor) bool {
	return m != nil && m.MentorType == profile.MentorTypeAcademic
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}
