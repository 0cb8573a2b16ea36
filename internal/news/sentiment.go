package news

import "strings"

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

var positiveWords = []string{
	"rise", "growth", "profit", "gain", "high",
	"bull", "surge", "increase", "boom", "rally",
}

var negativeWords = []string{
	"fall", "drop", "loss", "decline", "low",
	"bear", "crash", "plunge", "slump", "recession",
}

// analyzeSentiment оценивает тональность заголовка по ключевым словам.
// Смешанные сигналы дают нейтральную оценку.
func analyzeSentiment(text string) string {
	lowered := strings.ToLower(text)

	positive := containsAny(lowered, positiveWords)
	negative := containsAny(lowered, negativeWords)

	switch {
	case positive && !negative:
		return SentimentPositive
	case negative && !positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
