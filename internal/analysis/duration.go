// internal/analysis/duration.go
package analysis

import (
	"fmt"
	"math"
	"strings"
)

// Average speaking rate used for the estimate.
const wordsPerMinute = 150

// EstimateDuration converts a word count into an estimated spoken duration
// formatted as M:SS. Empty or whitespace-only text yields "0:00".
func EstimateDuration(text string) string {
	words := len(strings.Fields(text))
	if words == 0 {
		return "0:00"
	}

	totalSeconds := int(math.Round(float64(words) / wordsPerMinute * 60))
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
