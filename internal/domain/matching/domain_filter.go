package matching

import "strings"

// backgroundAliases maps common abbreviations to the field names used in
// mentor preferences.
var backgroundAliases = map[string]string{
	"cs":  "computer science",
	"cse": "computer science",
	"ece": "electrical engineering",
	"ee":  "electrical engineering",
	"ml":  "machine learning",
	"ai":  "artificial intelligence",
}

func normalizeBackground(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := backgroundAliases[s]; ok {
		return alias
	}
	return s
}

// PassesDomainFilter reports whether a student with the given major may be
// ranked against a mentor with the given comma-separated preferred
// backgrounds. Missing data on either side passes.
func PassesDomainFilter(studentMajor, preferredBackgrounds string) bool {
	if strings.TrimSpace(preferredBackgrounds) == "" {
		return true
	}
	major := normalizeBackground(studentMajor)
	if major == "" {
		return true
	}

	declared := 0
	for _, bg := range strings.Split(preferredBackgrounds, ",") {
		nbg := normalizeBackground(bg)
		if nbg == "" {
			continue
		}
		declared++
		if strings.Contains(nbg, major) || strings.Contains(major, nbg) {
			return true
		}
	}
	return declared == 0
}
