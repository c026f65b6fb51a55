// internal/analysis/parser.go
package analysis

import (
	"regexp"
	"strings"

	"github.com/scenespeak/scenespeak/internal/models"
)

// A dialogue line is a capitalized name segment (letters and spaces only)
// followed by a colon and the spoken text. Anything else on its own line is
// treated as scene direction and skipped.
var dialogueLinePattern = regexp.MustCompile(`^([A-Z][A-Za-z\s]+):\s*(.+)$`)

// ParseDialogue splits raw screenplay text into per-speaker utterances.
// Blank lines and non-matching lines are discarded silently; an empty or
// whitespace-only input yields no utterances.
func ParseDialogue(text string) []models.Utterance {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var utterances []models.Utterance
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		match := dialogueLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		utterances = append(utterances, models.Utterance{
			Speaker: strings.TrimSpace(match[1]),
			Text:    strings.TrimSpace(match[2]),
		})
	}

	return utterances
}
