package matching

import (
	"math"
	"testing"

	"mentor-match/internal/domain/profile"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	v := []float64{0.3, -1.2, 4.5}

	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity(v, []float64{-0.3, 1.2, -4.5}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)

	assert.Equal(t, 0.0, CosineSimilarity(nil, v))
	assert.Equal(t, 0.0, CosineSimilarity(v, []float64{}))
	assert.Equal(t, 0.0, CosineSimilarity(v, []float64{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0, 0}, v))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{math.NaN(), 1, 1}, v))
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	u := []float64{1, 2, 3}
	v := []float64{4, -5, 6}
	assert.InDelta(t, CosineSimilarity(u, v), CosineSimilarity(v, u), 1e-12)
}

func TestSemanticScore(t *testing.T) {
	assert.Equal(t, 0.0, SemanticScore(0))
	assert.InDelta(t, 85.0, SemanticScore(0.85), 1e-9)
}

func TestSemanticText(t *testing.T) {
	s := &profile.Student{ResearchInterests: "NLP", Bio: "  ", PrimarySkills: "Python"}
	assert.Equal(t, "NLP Python", StudentSemanticText(s))
	assert.Equal(t, "", StudentSemanticText(&profile.Student{}))
	assert.Equal(t, "", StudentSemanticText(nil))

	m := &profile.Mentor{ResearchAreas: "Robotics", Bio: "Lab lead"}
	assert.Equal(t, "Robotics Lab lead", MentorSemanticText(m))
	assert.Equal(t, "", MentorSemanticText(nil))
}
