package matching

import (
	"strings"
	"unicode/utf8"

	"mentor-match/internal/domain/profile"
)

const (
	StrongSemanticThreshold  = 0.8
	GoodSemanticThreshold    = 0.6
	StrongAlignmentThreshold = 30.0
	FairAlignmentThreshold   = 15.0

	FallbackExplanation = "Profile matched based on general domain availability."

	trendStatusRising = "rising"
)

// Explain builds the human-readable reason for a match from the raw semantic
// similarity, the alignment score and the mentor's topic trends. It performs
// no I/O.
func Explain(s *profile.Student, m *profile.Mentor, similarity, alignment float64) string {
	reasons := make([]string, 0, 4)

	switch {
	case similarity > StrongSemanticThreshold:
		reason := "strong alignment in research focus"
		if area := commonResearchArea(s, m); area != "" {
			reason += " (" + area + ")"
		}
		reasons = append(reasons, reason)
	case similarity > GoodSemanticThreshold:
		reasons = append(reasons, "good overlap in research interests")
	}

	switch {
	case alignment > StrongAlignmentThreshold:
		reasons = append(reasons, "your technical background strongly matches the lab's requirements")
	case alignment > FairAlignmentThreshold:
		reasons = append(reasons, "your profile fits the general expectations")
	}

	if s != nil && s.IsPhDSeeker && isAcademic(m) {
		reasons = append(reasons, "active PhD recruitment matches your goals")
	}

	if m != nil {
		if reason := trendReason(m.TopicTrends); reason != "" {
			reasons = append(reasons, reason)
		}
	}

	if len(reasons) == 0 {
		return FallbackExplanation
	}
	return "Matched because " + strings.Join(reasons, " and ") + "."
}

func trendReason(trends []profile.TopicTrend) string {
	var rising, active *profile.TopicTrend
	for i := range trends {
		t := &trends[i]
		if strings.TrimSpace(t.Topic) == "" {
			continue
		}
		if active == nil || t.TotalCount > active.TotalCount {
			active = t
		}
		if strings.EqualFold(strings.TrimSpace(t.Status), trendStatusRising) {
			if rising == nil || t.TotalCount > rising.TotalCount {
				rising = t
			}
		}
	}

	switch {
	case rising != nil:
		return "this supervisor has actively published on " + strings.TrimSpace(rising.Topic) + " in the last 3 years"
	case active != nil:
		return "recent research focus includes " + strings.TrimSpace(active.Topic)
	default:
		return ""
	}
}

// commonResearchArea returns the first student interest that overlaps one of
// the mentor's research areas. Interests of three characters or fewer are
// ignored.
func commonResearchArea(s *profile.Student, m *profile.Mentor) string {
	if s == nil || m == nil {
		return ""
	}
	areas := splitCommaList(m.ResearchAreas)
	for _, raw := range strings.Split(s.ResearchInterests, ",") {
		interest := strings.TrimSpace(raw)
		if utf8.RuneCountInString(interest) <= 3 {
			continue
		}
		li := strings.ToLower(interest)
		for _, a := range areas {
			if strings.Contains(a, li) || strings.Contains(li, a) {
				return interest
			}
		}
	}
	return ""
}
