package matching

import (
	"strings"

	"github.com/google/uuid"
)

const (
	WeightNiceToHave = 1
	WeightImportant  = 3
	WeightCritical   = 5
)

const (
	ImportanceCritical   = "Critical"
	ImportanceImportant  = "Important"
	ImportanceNiceToHave = "Nice to have"
)

// SkillRequirement is one weighted entry of an opportunity's requirement set.
// Weight is expected to be one of 1, 3 or 5; callers validate it.
type SkillRequirement struct {
	SkillID   uuid.UUID
	SkillName string
	Weight    int
}

type CandidateSkillSet map[uuid.UUID]struct{}

func NewCandidateSkillSet(ids ...uuid.UUID) CandidateSkillSet {
	s := make(CandidateSkillSet, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

func (s CandidateSkillSet) Has(id uuid.UUID) bool {
	if s == nil {
		return false
	}
	_, ok := s[id]
	return ok
}

func (s CandidateSkillSet) Len() int {
	return len(s)
}

func Importance(weight int) string {
	switch {
	case weight >= WeightCritical:
		return ImportanceCritical
	case weight >= WeightImportant:
		return ImportanceImportant
	default:
		return ImportanceNiceToHave
	}
}

func IsValidWeight(weight int) bool {
	return weight == WeightNiceToHave || weight == WeightImportant || weight == WeightCritical
}

// splitCommaList lower-cases and trims every entry, dropping empty ones.
func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
