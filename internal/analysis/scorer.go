// internal/analysis/scorer.go
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/scenespeak/scenespeak/internal/models"
)

const (
	baseScore          = 5
	charactersPerPoint = 50
	shortTextThreshold = 100
)

// Fixed issue and suggestion copy, keyed off the score band and image
// presence. The exact wording is part of the product surface.
const (
	issueTooShort       = "Dialogue appears too short or lacks context."
	issueThinScene      = "Scene description may be insufficient."
	issueUnnatural      = "Some dialogue may sound unnatural."
	issueNeedsEmotion   = "Consider adding more emotional context."
	issueNoImage        = "No scene image provided for visual context analysis."
	issueNoneDetected   = "No major issues detected."
	suggestExpand       = "Try expanding the dialogue with more natural conversation flow."
	suggestEmotions     = "Add character emotions and reactions."
	suggestContext      = "Consider the scene context and environment."
	suggestLooksNatural = "Dialogue looks natural and well-structured!"
	suggestTestActors   = "Consider testing with actors for real-world feedback."
	suggestUploadImage  = "Upload a scene image for comprehensive visual-text analysis."
	suggestImageHelps   = "Image context can help validate dialogue authenticity."
)

// Score rates the input on a 1-10 scale. Non-blank text overrides the base
// score with clamp(length/50, 1, 10); a present image adds one point, capped
// at 10. Length is counted in characters, not bytes.
func Score(text string, hasImage bool) int {
	score := baseScore

	if strings.TrimSpace(text) != "" {
		score = utf8.RuneCountInString(text) / charactersPerPoint
		if score < 1 {
			score = 1
		}
		if score > 10 {
			score = 10
		}
	}

	if hasImage && score < 10 {
		score++
	}

	return score
}

// RiskLevel derives the coarse risk band from the score. Band boundaries are
// inclusive on the lower bound: 4 is Medium, 7 is Low.
func RiskLevel(score int) string {
	switch {
	case score < 4:
		return models.RiskHigh
	case score < 7:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// GenerateIssues emits the fixed issue list for the score band, appending the
// missing-image issue when applicable. The result is never empty: a clean
// analysis gets the "no major issues" sentinel.
func GenerateIssues(score int, hasImage bool) []string {
	var issues []string

	if score < 4 {
		issues = append(issues, issueTooShort, issueThinScene)
	} else if score < 7 {
		issues = append(issues, issueUnnatural, issueNeedsEmotion)
	}

	if !hasImage {
		issues = append(issues, issueNoImage)
	}

	if len(issues) == 0 {
		return []string{issueNoneDetected}
	}
	return issues
}

// GenerateSuggestions emits the fixed suggestion list for the score band,
// always ending with exactly one image-related suggestion.
func GenerateSuggestions(score int, hasImage bool) []string {
	var suggestions []string

	if score < 7 {
		suggestions = append(suggestions, suggestExpand, suggestEmotions, suggestContext)
	} else {
		suggestions = append(suggestions, suggestLooksNatural, suggestTestActors)
	}

	if hasImage {
		suggestions = append(suggestions, suggestImageHelps)
	} else {
		suggestions = append(suggestions, suggestUploadImage)
	}

	return suggestions
}

// GenerateAlternatives produces alternative-phrasing tips independent of the
// score. Short inputs get two expansion prompts first; the three generic
// craft tips always close the list.
func GenerateAlternatives(text string) []string {
	var alternatives []string

	if utf8.RuneCountInString(text) < shortTextThreshold {
		alternatives = append(alternatives,
			`"Consider expanding this dialogue to give more depth to the scene."`,
			`"Add character reactions and emotional beats between lines."`,
		)
	}

	alternatives = append(alternatives,
		`"Try reading the dialogue out loud to test its naturalness."`,
		`"Consider adding subtext - what are characters NOT saying?"`,
		`"Use contractions and informal language for more authentic speech."`,
	)

	return alternatives
}
