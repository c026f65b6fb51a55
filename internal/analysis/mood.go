// internal/analysis/mood.go
package analysis

import "github.com/scenespeak/scenespeak/internal/models"

// moodLabels maps the dominant emotion category to a scene mood label.
var moodLabels = map[string]string{
	CategoryHappy:   "Uplifting & Positive",
	CategorySad:     "Melancholic & Somber",
	CategoryAngry:   "Tense & Confrontational",
	CategoryFear:    "Suspenseful & Anxious",
	CategoryNeutral: "Calm & Balanced",
}

const moodMixed = "Mixed Emotions"

// DominantEmotion picks the category with the highest count. Ties are broken
// by the canonical order happy, sad, angry, fear, neutral so the result is
// reproducible regardless of how the profile was built.
func DominantEmotion(profile models.EmotionProfile) string {
	type categoryCount struct {
		category string
		count    int
	}

	ordered := []categoryCount{
		{CategoryHappy, profile.Happy},
		{CategorySad, profile.Sad},
		{CategoryAngry, profile.Angry},
		{CategoryFear, profile.Fear},
		{CategoryNeutral, profile.Neutral},
	}

	max := ordered[0].count
	for _, c := range ordered {
		if c.count > max {
			max = c.count
		}
	}

	for _, c := range ordered {
		if c.count == max {
			return c.category
		}
	}
	return CategoryNeutral
}

// InferSceneMood maps the dominant emotion of the profile to a mood label.
func InferSceneMood(profile models.EmotionProfile) string {
	if label, ok := moodLabels[DominantEmotion(profile)]; ok {
		return label
	}
	return moodMixed
}
