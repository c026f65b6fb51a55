// internal/analysis/lexicon.go
package analysis

import (
	"strings"

	"github.com/scenespeak/scenespeak/internal/models"
)

// Emotion categories. The order of scoredCategories is the canonical
// tie-break order for dominant-emotion selection.
const (
	CategoryHappy   = "happy"
	CategorySad     = "sad"
	CategoryAngry   = "angry"
	CategoryFear    = "fear"
	CategoryNeutral = "neutral"
)

var scoredCategories = []string{CategoryHappy, CategorySad, CategoryAngry, CategoryFear}

// countedLexicon drives the global histogram: every keyword occurrence in the
// whole dialogue is counted. Matching is case-insensitive literal substring
// containment with no word-boundary check, so "madness" counts toward "mad".
// That imprecision is part of the heuristic's contract and locked by tests.
var countedLexicon = map[string][]string{
	CategoryHappy: {"happy", "joy", "smile", "laugh", "love", "wonderful", "great", "excited"},
	CategorySad:   {"sad", "cry", "tears", "sorry", "miss", "alone", "depressed"},
	CategoryAngry: {"angry", "mad", "hate", "furious", "rage", "damn", "stupid"},
	CategoryFear:  {"scared", "afraid", "terrified", "nervous", "worried", "anxious"},
}

// characterLexicon drives per-character detection, where only presence
// matters. The keyword lists deliberately differ from the counted table.
var characterLexicon = map[string][]string{
	CategoryHappy: {"happy", "joy", "smile", "laugh", "excited", "wonderful"},
	CategorySad:   {"sad", "cry", "tears", "sorry", "depressed", "unhappy"},
	CategoryAngry: {"angry", "mad", "furious", "hate", "damn", "rage"},
	CategoryFear:  {"scared", "afraid", "terrified", "nervous", "worried"},
}

// CountEmotions scans the whole dialogue and accumulates non-overlapping
// keyword occurrence counts per scored category. Neutral is never scanned:
// it is set to 1 only when all four scored totals are zero.
func CountEmotions(text string) models.EmotionProfile {
	lower := strings.ToLower(text)

	profile := models.EmotionProfile{
		Happy: countOccurrences(lower, countedLexicon[CategoryHappy]),
		Sad:   countOccurrences(lower, countedLexicon[CategorySad]),
		Angry: countOccurrences(lower, countedLexicon[CategoryAngry]),
		Fear:  countOccurrences(lower, countedLexicon[CategoryFear]),
	}

	if profile.Happy+profile.Sad+profile.Angry+profile.Fear == 0 {
		profile.Neutral = 1
	}

	return profile
}

// DetectCharacterEmotions returns the ordered set of categories whose
// keywords appear anywhere in a character's concatenated utterances.
// When nothing matches the result is the singleton {"neutral"}.
func DetectCharacterEmotions(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, category := range scoredCategories {
		for _, keyword := range characterLexicon[category] {
			if strings.Contains(lower, keyword) {
				detected = append(detected, category)
				break
			}
		}
	}

	if len(detected) == 0 {
		return []string{CategoryNeutral}
	}
	return detected
}

func countOccurrences(lower string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(lower, keyword)
	}
	return total
}
