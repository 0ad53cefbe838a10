package research

import (
	"sort"
	"strings"

	"mentor-match/internal/domain/profile"
)

const (
	StatusRising    = "Rising"
	StatusStable    = "Stable"
	StatusDeclining = "Declining"
)

type topicStats struct {
	name       string
	total      int
	recent     int
	prior      int
	lastActive int
}

// AnalyzeTrends aggregates publications per topic. Activity in the last
// lookback years is compared with the window before it: more recent work is
// Rising, less is Declining, equal non-zero activity is Stable. Publications
// without a year count towards the total only.
func AnalyzeTrends(pubs []Publication, researchAreasCSV string, currentYear, lookback int) []profile.TopicTrend {
	if lookback <= 0 {
		lookback = 3
	}
	areas := researchAreas(researchAreasCSV)
	recentFrom := currentYear - lookback + 1
	priorFrom := recentFrom - lookback

	stats := map[string]*topicStats{}
	order := make([]string, 0)
	for _, p := range pubs {
		for _, topic := range topicsFor(p, areas) {
			key := topicKey(topic)
			st, ok := stats[key]
			if !ok {
				st = &topicStats{name: topic}
				stats[key] = st
				order = append(order, key)
			}
			st.total++
			if p.Year > st.lastActive {
				st.lastActive = p.Year
			}
			switch {
			case p.Year >= recentFrom && p.Year <= currentYear:
				st.recent++
			case p.Year >= priorFrom && p.Year < recentFrom:
				st.prior++
			}
		}
	}

	out := make([]profile.TopicTrend, 0, len(order))
	for _, key := range order {
		st := stats[key]
		out = append(out, profile.TopicTrend{
			Topic:      st.name,
			Status:     classify(st.recent, st.prior),
			TotalCount: st.total,
			LastActive: st.lastActive,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalCount != out[j].TotalCount {
			return out[i].TotalCount > out[j].TotalCount
		}
		return strings.ToLower(out[i].Topic) < strings.ToLower(out[j].Topic)
	})
	return out
}

func classify(recent, prior int) string {
	switch {
	case recent > prior:
		return StatusRising
	case recent < prior || recent == 0:
		return StatusDeclining
	default:
		return StatusStable
	}
}
