// internal/services/analyzer.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/scenespeak/scenespeak/internal/analysis"
	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/logger"
	"github.com/scenespeak/scenespeak/internal/models"
)

// FallbackNotice is surfaced to the caller when the remote service could not
// be reached and the result was computed locally instead.
const FallbackNotice = "Failed to connect to the analysis service. Using local analysis instead."

// RemoteAnalyzer is the remote analysis collaborator. The orchestrator treats
// any error as recoverable and falls back to the local pipeline.
type RemoteAnalyzer interface {
	AnalyzeScript(ctx context.Context, text string) (*models.RemoteAnalysisResponse, error)
}

// AnalyzeRequest describes one analysis invocation. The image itself is never
// inspected; only its presence matters.
type AnalyzeRequest struct {
	Text      string
	HasImage  bool
	LocalOnly bool // skip the remote service even when text is present
}

// AnalyzeOutcome is the result of one invocation plus any advisory notice.
type AnalyzeOutcome struct {
	Result *models.AnalysisResult `json:"result"`
	Notice string                 `json:"notice,omitempty"`
}

// AnalyzerService orchestrates a single analysis: remote-first when text is
// present, fully local otherwise or on remote failure. Exactly one analysis
// may be in flight at a time; overlapping requests are rejected.
type AnalyzerService struct {
	remote  RemoteAnalyzer
	history *HistoryService
	log     *slog.Logger
	running atomic.Bool

	idMu    sync.Mutex
	entropy *rand.Rand
}

// NewAnalyzerService wires the orchestrator with its collaborators. remote
// may be nil for a local-only deployment.
func NewAnalyzerService(remote RemoteAnalyzer, history *HistoryService) *AnalyzerService {
	return &AnalyzerService{
		remote:  remote,
		history: history,
		log:     logger.With("analyzer"),
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Analyze runs one analysis and appends the result to history. It rejects
// empty requests (no text and no image) with a validation error and
// overlapping requests with a conflict error; neither mutates any state.
func (s *AnalyzerService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeOutcome, error) {
	hasText := strings.TrimSpace(req.Text) != ""
	if !hasText && !req.HasImage {
		return nil, apperrors.NewValidation("provide dialogue text or a scene image to analyze", nil)
	}

	if !s.running.CompareAndSwap(false, true) {
		return nil, apperrors.NewConflict("an analysis is already in progress", nil)
	}
	defer s.running.Store(false)

	outcome := &AnalyzeOutcome{}

	if hasText && !req.LocalOnly && s.remote != nil {
		response, err := s.remote.AnalyzeScript(ctx, req.Text)
		if err == nil {
			outcome.Result = s.buildRemoteResult(req, response)
		} else {
			s.log.Warn("remote analysis failed, using local analysis", "error", err)
			outcome.Notice = FallbackNotice
		}
	}

	if outcome.Result == nil {
		outcome.Result = s.buildLocalResult(req, hasText)
	}

	// A write failure is fatal to persistence only; the result still stands.
	if err := s.history.Append(*outcome.Result); err != nil {
		s.log.Error("recording analysis in history", "error", err)
	}

	return outcome, nil
}

// newResult assembles the locally computed fields shared by both paths:
// character profiles, the emotion histogram, scene mood, estimated duration
// and alternative suggestions.
func (s *AnalyzerService) newResult(req AnalyzeRequest, hasText bool) *models.AnalysisResult {
	utterances := analysis.ParseDialogue(req.Text)
	characters := analysis.AggregateCharacters(utterances)
	if characters == nil {
		characters = []models.CharacterProfile{}
	}

	result := &models.AnalysisResult{
		ID:                     s.newID(),
		HasText:                hasText,
		HasImage:               req.HasImage,
		Characters:             characters,
		AlternativeSuggestions: analysis.GenerateAlternatives(req.Text),
		Timestamp:              time.Now().UTC(),
	}

	if hasText {
		emotions := analysis.CountEmotions(req.Text)
		result.Emotions = &emotions
		result.SceneMood = analysis.InferSceneMood(emotions)
		result.EstimatedDuration = analysis.EstimateDuration(req.Text)
	}

	return result
}

// buildRemoteResult merges the remote verdict (score, risk, issues,
// suggestions) with the locally computed fields and embeds the raw response.
func (s *AnalyzerService) buildRemoteResult(req AnalyzeRequest, response *models.RemoteAnalysisResponse) *models.AnalysisResult {
	result := s.newResult(req, true)

	// The service may score fractionally; the result scale is integral.
	result.Score = int(math.Round(response.Analysis.NaturalnessScore))
	result.Risk = response.Analysis.RiskLevel

	issues := append([]string{}, response.Summary.PrimaryIssues...)
	for _, issue := range response.IssuesDetected {
		issues = append(issues, fmt.Sprintf("%s (%s): %s", issue.Type, issue.Severity, issue.Description))
	}
	result.Issues = issues

	suggestions := make([]string, 0, len(response.Suggestions))
	for _, suggestion := range response.Suggestions {
		suggestions = append(suggestions, suggestion.Recommendation)
	}
	result.Suggestions = suggestions

	result.RemoteResponse = response
	return result
}

// buildLocalResult computes every field from the deterministic heuristics.
func (s *AnalyzerService) buildLocalResult(req AnalyzeRequest, hasText bool) *models.AnalysisResult {
	result := s.newResult(req, hasText)

	score := analysis.Score(req.Text, req.HasImage)
	result.Score = score
	result.Risk = analysis.RiskLevel(score)
	result.Issues = analysis.GenerateIssues(score, req.HasImage)
	result.Suggestions = analysis.GenerateSuggestions(score, req.HasImage)

	return result
}

func (s *AnalyzerService) newID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}
