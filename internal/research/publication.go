package research

import (
	"regexp"
	"strconv"
	"strings"
)

type Publication struct {
	Title    string
	Year     int
	Keywords []string
}

var yearRe = regexp.MustCompile(`\b(19[5-9]\d|20\d{2})\b`)

// extractYear returns the last plausible publication year found in s, or 0.
func extractYear(s string) int {
	m := yearRe.FindAllString(s, -1)
	if len(m) == 0 {
		return 0
	}
	y, err := strconv.Atoi(m[len(m)-1])
	if err != nil {
		return 0
	}
	return y
}

func splitKeywords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Join(strings.Fields(f), " ")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// topicsFor maps a publication to topics. Declared keywords win; otherwise
// any of the mentor's research areas mentioned in the title is used.
func topicsFor(p Publication, areas []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 2)
	add := func(t string) {
		key := topicKey(t)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, canonicalTopic(t))
	}

	if len(p.Keywords) > 0 {
		for _, k := range p.Keywords {
			add(k)
		}
		return out
	}

	title := normalizeTopic(p.Title)
	for _, a := range areas {
		if mentions(title, a) {
			add(a)
		}
	}
	return out
}

func researchAreas(s string) []string {
	out := make([]string, 0)
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if len([]rune(a)) < 2 {
			continue
		}
		out = append(out, a)
	}
	return out
}
