// internal/models/analysis.go
package models

import "time"

// Risk bands derived from the numeric score.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Utterance is one parsed speaker/line pair extracted from dialogue text.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// CharacterProfile summarizes one speaker's dialogue in a single analysis run.
// Profiles are rebuilt from scratch on every run, never updated incrementally.
type CharacterProfile struct {
	Name          string   `json:"name"`
	LineCount     int      `json:"line_count"`      // number of utterances
	AverageLength int      `json:"average_length"`  // rounded mean utterance length in characters
	Emotions      []string `json:"emotions"`        // detected categories, {"neutral"} when none matched
}

// EmotionProfile is the keyword-derived emotion histogram over the whole
// dialogue. If the four scored categories all come out zero, Neutral is set
// to 1 so the dominant category and percentage basis stay well defined.
type EmotionProfile struct {
	Happy   int `json:"happy"`
	Sad     int `json:"sad"`
	Angry   int `json:"angry"`
	Fear    int `json:"fear"`
	Neutral int `json:"neutral"`
}

// Total returns the sum of all category counts. Always >= 1 for profiles
// produced by the detector.
func (p EmotionProfile) Total() int {
	return p.Happy + p.Sad + p.Angry + p.Fear + p.Neutral
}

// AnalysisResult is the top-level record produced by one analysis run.
// It is immutable once built; ownership passes to the history manager on save.
type AnalysisResult struct {
	ID                     string                  `json:"id"`
	Score                  int                     `json:"score"` // 1-10
	Risk                   string                  `json:"risk"`
	Issues                 []string                `json:"issues"`
	Suggestions            []string                `json:"suggestions"`
	HasImage               bool                    `json:"has_image"`
	HasText                bool                    `json:"has_text"`
	Characters             []CharacterProfile      `json:"characters"`
	Emotions               *EmotionProfile         `json:"emotions,omitempty"` // absent when no text was supplied
	SceneMood              string                  `json:"scene_mood,omitempty"`
	EstimatedDuration      string                  `json:"estimated_duration,omitempty"` // M:SS
	AlternativeSuggestions []string                `json:"alternative_suggestions"`
	Timestamp              time.Time               `json:"timestamp"`
	RemoteResponse         *RemoteAnalysisResponse `json:"remote_response,omitempty"` // set only on the remote path
}
