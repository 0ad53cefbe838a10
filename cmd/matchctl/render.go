package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"mentor-match/internal/database/migration"
	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/profile"
	"mentor-match/internal/logger"
	"mentor-match/internal/usecase"

	"github.com/olekukonko/tablewriter"
)

func renderMatches(w io.Writer, matches []matching.MentorMatch) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "no mentors matched")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Mentor", "Institution", "Score", "Semantic", "Alignment", "Accepting", "Why")
	for i, m := range matches {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			m.MentorName,
			m.Institution,
			strconv.Itoa(m.MatchScore),
			strconv.Itoa(m.SemanticScore),
			strconv.Itoa(m.AlignmentScore),
			m.AcceptingStudents,
			logger.TruncateForLog(m.Explanation, 60),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderReadiness(w io.Writer, r usecase.ReadinessReport) error {
	table := tablewriter.NewWriter(w)
	table.Header("Bucket", "Points")
	rows := [][]string{
		{"education", formatPoints(r.Breakdown.Education)},
		{"profile basics", formatPoints(r.Breakdown.ProfileBasics)},
		{"skills", formatPoints(r.Breakdown.Skills)},
		{"experience", formatPoints(r.Breakdown.Experience)},
		{"total", formatPoints(r.Score)},
		{"stored", formatPoints(r.StoredScore)},
		{"completeness %", strconv.Itoa(r.Completeness)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderTrends(w io.Writer, trends []profile.TopicTrend) error {
	if len(trends) == 0 {
		_, err := fmt.Fprintln(w, "no topics found")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("Topic", "Status", "Publications", "Last active")
	for _, t := range trends {
		last := "-"
		if t.LastActive > 0 {
			last = strconv.Itoa(t.LastActive)
		}
		if err := table.Append([]string{t.Topic, t.Status, strconv.Itoa(t.TotalCount), last}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderMigrations(w io.Writer, statuses []migration.Status) error {
	table := tablewriter.NewWriter(w)
	table.Header("Version", "Name", "Applied")
	for _, st := range statuses {
		applied := "pending"
		if !st.Pending {
			applied = st.AppliedAt.UTC().Format(time.RFC3339)
		}
		if err := table.Append([]string{strconv.FormatInt(st.Version, 10), st.Name, applied}); err != nil {
			return err
		}
	}
	return table.Render()
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
