// internal/analysis/characters.go
package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/scenespeak/scenespeak/internal/models"
)

// AggregateCharacters groups utterances by exact speaker name and builds one
// profile per speaker, in order of first appearance. A group always has at
// least one member, so the average length is always defined.
func AggregateCharacters(utterances []models.Utterance) []models.CharacterProfile {
	type group struct {
		texts       []string
		totalLength int
	}

	var order []string
	groups := make(map[string]*group)

	for _, u := range utterances {
		g, ok := groups[u.Speaker]
		if !ok {
			g = &group{}
			groups[u.Speaker] = g
			order = append(order, u.Speaker)
		}
		g.texts = append(g.texts, u.Text)
		g.totalLength += utf8.RuneCountInString(u.Text)
	}

	profiles := make([]models.CharacterProfile, 0, len(order))
	for _, name := range order {
		g := groups[name]
		profiles = append(profiles, models.CharacterProfile{
			Name:          name,
			LineCount:     len(g.texts),
			AverageLength: int(math.Round(float64(g.totalLength) / float64(len(g.texts)))),
			Emotions:      DetectCharacterEmotions(strings.Join(g.texts, " ")),
		})
	}

	return profiles
}
