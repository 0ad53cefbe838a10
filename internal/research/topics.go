package research

import (
	"strings"
	"unicode"
)

var topicAliases = map[string]string{
	"gnn":                         "Graph Neural Networks",
	"gnns":                        "Graph Neural Networks",
	"graph neural network":        "Graph Neural Networks",
	"graph neural networks":       "Graph Neural Networks",
	"nlp":                         "Natural Language Processing",
	"natural language processing": "Natural Language Processing",
	"ml":                          "Machine Learning",
	"machine learning":            "Machine Learning",
	"dl":                          "Deep Learning",
	"deep learning":               "Deep Learning",
	"cv":                          "Computer Vision",
	"computer vision":             "Computer Vision",
	"rl":                          "Reinforcement Learning",
	"reinforcement learning":      "Reinforcement Learning",
	"llm":                         "Large Language Models",
	"llms":                        "Large Language Models",
	"large language model":        "Large Language Models",
	"large language models":       "Large Language Models",
	"hci":                         "Human-Computer Interaction",
	"human computer interaction":  "Human-Computer Interaction",
	"ai":                          "Artificial Intelligence",
	"artificial intelligence":     "Artificial Intelligence",
	"iot":                         "Internet of Things",
	"internet of things":          "Internet of Things",
}

func normalizeTopic(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '/' || r == '_':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// canonicalTopic resolves known abbreviations and spellings; unknown topics
// keep their own wording with whitespace collapsed.
func canonicalTopic(s string) string {
	if c, ok := topicAliases[normalizeTopic(s)]; ok {
		return c
	}
	return strings.Join(strings.Fields(s), " ")
}

func topicKey(s string) string {
	return normalizeTopic(canonicalTopic(s))
}

// mentions reports whether the normalized text names topic, either directly
// or through one of its aliases. Matches are whole words.
func mentions(normalizedText, topic string) bool {
	if normalizedText == "" {
		return false
	}
	padded := " " + normalizedText + " "
	want := topicKey(topic)
	if want != "" && strings.Contains(padded, " "+want+" ") {
		return true
	}
	canonical := canonicalTopic(topic)
	for alias, c := range topicAliases {
		if c == canonical && strings.Contains(padded, " "+alias+" ") {
			return true
		}
	}
	return false
}
