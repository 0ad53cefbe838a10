package matching

import (
	"math"
)

const NoRequirementsDetails = "No specific skills required."

type MissingSkill struct {
	Name       string `json:"name"`
	Weight     int    `json:"weight"`
	Importance string `json:"importance"`
}

type MatchResult struct {
	Score               float64        `json:"score"`
	MatchedSkills       []string       `json:"matched_skills"`
	MissingSkills       []MissingSkill `json:"missing_skills"`
	TotalRequiredSkills int            `json:"total_required_skills"`
	MatchedCount        int            `json:"matched_count"`
	Details             string         `json:"details,omitempty"`
}

// ScoreApplication computes the weighted overlap between a candidate's skills
// and an opportunity's requirement set. An empty requirement set scores 100.
func ScoreApplication(skills CandidateSkillSet, reqs []SkillRequirement) MatchResult {
	if len(reqs) == 0 {
		return MatchResult{
			Score:         100.0,
			MatchedSkills: []string{},
			MissingSkills: []MissingSkill{},
			Details:       NoRequirementsDetails,
		}
	}

	totalWeight := 0
	matchedWeight := 0
	matched := make([]string, 0, len(reqs))
	missing := make([]MissingSkill, 0)

	for _, r := range reqs {
		totalWeight += r.Weight
		name := r.SkillName
		if name == "" {
			name = "Skill ID " + r.SkillID.String()
		}

		if skills.Has(r.SkillID) {
			matchedWeight += r.Weight
			matched = append(matched, name)
			continue
		}

		missing = append(missing, MissingSkill{
			Name:       name,
			Weight:     r.Weight,
			Importance: Importance(r.Weight),
		})
	}

	score := 100.0
	if totalWeight > 0 {
		score = float64(matchedWeight) / float64(totalWeight) * 100.0
	}

	return MatchResult{
		Score:               roundTo(score, 1),
		MatchedSkills:       matched,
		MissingSkills:       missing,
		TotalRequiredSkills: len(reqs),
		MatchedCount:        len(matched),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
