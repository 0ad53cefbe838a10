package matching

import (
	"math"
	"strings"

	"mentor-match/internal/domain/profile"
)

// CosineSimilarity returns dot(u,v)/(|u||v|). Empty, mismatched or zero-norm
// vectors yield 0.
func CosineSimilarity(u, v []float64) float64 {
	if len(u) == 0 || len(v) == 0 || len(u) != len(v) {
		return 0
	}

	var dot, nu, nv float64
	for i := range u {
		dot += u[i] * v[i]
		nu += u[i] * u[i]
		nv += v[i] * v[i]
	}
	if nu == 0 || nv == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(nu) * math.Sqrt(nv))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	return sim
}

func SemanticScore(similarity float64) float64 {
	return similarity * 100
}

func StudentSemanticText(s *profile.Student) string {
	if s == nil {
		return ""
	}
	return joinNonEmpty(s.ResearchInterests, s.Bio, s.PrimarySkills)
}

func MentorSemanticText(m *profile.Mentor) string {
	if m == nil {
		return ""
	}
	return joinNonEmpty(m.ResearchAreas, m.Bio)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}
