package matching

import (
	"testing"

	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineScores(t *testing.T) {
	assert.InDelta(t, 71.0, CombineScores(85, 20, 0.6), 1e-9)
	assert.Equal(t, 100.0, CombineScores(100, 40, 0.6))
	assert.Equal(t, 0.0, CombineScores(0, 0, 0.6))
}

func TestTopTrends(t *testing.T) {
	trends := []profile.TopicTrend{
		{Topic: "a", Status: "Stable", TotalCount: 2},
		{Topic: "b", Status: "Rising", TotalCount: 9},
		{Topic: " ", Status: "Rising", TotalCount: 50},
		{Topic: "c", Status: "Declining", TotalCount: 5},
		{Topic: "d", Status: "Stable", TotalCount: 5},
	}

	got := TopTrends(trends, MaxTrendSummaries)
	require.Len(t, got, 3)
	assert.Equal(t, TrendSummary{Topic: "b", Status: "Rising", Count: 9}, got[0])
	assert.Equal(t, "c", got[1].Topic)
	assert.Equal(t, "d", got[2].Topic)

	assert.Empty(t, TopTrends(nil, 3))
	assert.NotNil(t, TopTrends(nil, 3))
	assert.Empty(t, TopTrends(trends, 0))
}

func TestNewMentorMatch(t *testing.T) {
	id := uuid.New()
	m := &profile.Mentor{
		ID:                id,
		MentorType:        profile.MentorTypeIndustry,
		Company:           "Acme Research",
		Position:          "Staff Scientist",
		ResearchAreas:     "Computer Vision",
		AcceptingStudents: "Yes",
	}

	final := CombineScores(SemanticScore(0.555), 12.5, 0.6)
	mm := NewMentorMatch(&profile.Student{}, m, 0.555, 12.5, final)

	assert.Equal(t, id, mm.MentorID)
	assert.Equal(t, "Unknown", mm.MentorName)
	assert.Equal(t, "Acme Research", mm.Institution)
	assert.Equal(t, 56, mm.SemanticScore)
	assert.Equal(t, 13, mm.AlignmentScore)
	assert.Equal(t, 46, mm.MatchScore)
	assert.InDelta(t, 45.8, mm.FinalScore, 1e-9)
	assert.Equal(t, FallbackExplanation, mm.Explanation)
	assert.NotNil(t, mm.Trends)
}
