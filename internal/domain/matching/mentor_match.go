package matching

import (
	"sort"
	"strings"

	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
)

const MaxTrendSummaries = 3

type TrendSummary struct {
	Topic  string `json:"topic"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MentorMatch is one ranked entry of a student's mentor list. FinalScore keeps
// the unrounded composite used for ordering.
type MentorMatch struct {
	MentorID          uuid.UUID      `json:"mentor_id"`
	MentorName        string         `json:"mentor_name"`
	MentorType        string         `json:"mentor_type"`
	Institution       string         `json:"institution"`
	Position          string         `json:"position"`
	MatchScore        int            `json:"match_score"`
	SemanticScore     int            `json:"semantic_score"`
	AlignmentScore    int            `json:"alignment_score"`
	FinalScore        float64        `json:"final_score"`
	Explanation       string         `json:"explanation"`
	ResearchAreas     string         `json:"research_areas"`
	AcceptingStudents string         `json:"accepting_students"`
	Trends            []TrendSummary `json:"trends"`
}

func CombineScores(semantic, alignment, semanticWeight float64) float64 {
	final := semantic*semanticWeight + alignment
	if final > 100 {
		return 100
	}
	return final
}

// TopTrends returns up to n trend summaries ordered by activity count
// descending. Trends without a topic are skipped.
func TopTrends(trends []profile.TopicTrend, n int) []TrendSummary {
	if n <= 0 || len(trends) == 0 {
		return []TrendSummary{}
	}

	sorted := make([]profile.TopicTrend, 0, len(trends))
	for _, t := range trends {
		if strings.TrimSpace(t.Topic) == "" {
			continue
		}
		sorted = append(sorted, t)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCount > sorted[j].TotalCount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]TrendSummary, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, TrendSummary{Topic: strings.TrimSpace(t.Topic), Status: t.Status, Count: t.TotalCount})
	}
	return out
}

func NewMentorMatch(s *profile.Student, m *profile.Mentor, similarity, alignment, final float64) MentorMatch {
	return MentorMatch{
		MentorID:          m.ID,
		MentorName:        pickName(m.Name),
		MentorType:        m.MentorType,
		Institution:       m.Institution(),
		Position:          m.Position,
		MatchScore:        int(roundTo(final, 0)),
		SemanticScore:     int(roundTo(SemanticScore(similarity), 0)),
		AlignmentScore:    int(roundTo(alignment, 0)),
		FinalScore:        final,
		Explanation:       Explain(s, m, similarity, alignment),
		ResearchAreas:     m.ResearchAreas,
		AcceptingStudents: m.AcceptingStudents,
		Trends:            TopTrends(m.TopicTrends, MaxTrendSummaries),
	}
}

func pickName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return name
}
