package chatController

import (
	"encoding/json"
	"strings"

	"lms/models"
)

// FallbackAnswer is returned when neither the AI path nor any FAQ can
// answer the question.
const FallbackAnswer = "I'm not sure about that one. Please check the course pages or contact support@learnhub.io."

// MatchFAQ scores every FAQ by keyword overlap with the question and
// returns the best answer. Scoring is deterministic: highest keyword hit
// count wins, earlier row wins ties. Returns false when nothing matches.
func MatchFAQ(question string, faqs []models.FAQ) (string, bool) {
	tokens := tokenize(question)
	if len(tokens) == 0 {
		return "", false
	}

	bestScore := 0
	bestAnswer := ""
	for _, faq := range faqs {
		var keywords []string
		if err := json.Unmarshal(faq.Keywords, &keywords); err != nil {
			continue // malformed keyword list, skip the row
		}

		score := 0
		for _, keyword := range keywords {
			if tokens[strings.ToLower(strings.TrimSpace(keyword))] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestAnswer = faq.Answer
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return bestAnswer, true
}

// tokenize lowercases the question and splits it into a word set
func tokenize(question string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(question))

	tokens := make(map[string]bool)
	for _, word := range strings.Fields(cleaned) {
		tokens[word] = true
	}
	return tokens
}
