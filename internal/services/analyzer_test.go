// internal/services/analyzer_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

// fakeRemote replays a canned response or error and counts invocations.
type fakeRemote struct {
	response *models.RemoteAnalysisResponse
	err      error
	calls    int
}

func (f *fakeRemote) AnalyzeScript(ctx context.Context, text string) (*models.RemoteAnalysisResponse, error) {
	f.calls++
	return f.response, f.err
}

// blockingRemote parks inside AnalyzeScript until released, so a second
// request can be issued while the first is still in flight.
type blockingRemote struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingRemote) AnalyzeScript(ctx context.Context, text string) (*models.RemoteAnalysisResponse, error) {
	close(b.entered)
	<-b.release
	return nil, errors.New("released")
}

func remoteResponse() *models.RemoteAnalysisResponse {
	return &models.RemoteAnalysisResponse{
		Analysis: models.RemoteAnalysis{NaturalnessScore: 8, RiskLevel: models.RiskLow, Confidence: 0.9},
		Summary:  models.RemoteSummary{PrimaryIssues: []string{"minor pacing issues"}},
		IssuesDetected: []models.RemoteIssue{
			{Type: "Pacing", Severity: "Low", Description: "rushed exchange"},
		},
		Suggestions: []models.RemoteSuggestion{
			{IssueType: "Pacing", Recommendation: "let the silence breathe"},
		},
	}
}

func newTestAnalyzer(remote RemoteAnalyzer) (*AnalyzerService, *HistoryService) {
	history := NewHistoryService(&fakeStore{})
	return NewAnalyzerService(remote, history), history
}

func TestAnalyze_RejectsEmptyRequest(t *testing.T) {
	analyzer, history := newTestAnalyzer(nil)

	_, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "   \n  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, history.List())
}

func TestAnalyze_RemoteSuccessMergesVerdict(t *testing.T) {
	remote := &fakeRemote{response: remoteResponse()}
	analyzer, history := newTestAnalyzer(remote)

	outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: I'm so happy today!"})
	require.NoError(t, err)
	require.NotNil(t, outcome.Result)
	assert.Empty(t, outcome.Notice)
	assert.Equal(t, 1, remote.calls)

	result := outcome.Result
	assert.Equal(t, 8, result.Score)
	assert.Equal(t, models.RiskLow, result.Risk)
	assert.Equal(t, []string{
		"minor pacing issues",
		"Pacing (Low): rushed exchange",
	}, result.Issues)
	assert.Equal(t, []string{"let the silence breathe"}, result.Suggestions)
	require.NotNil(t, result.RemoteResponse)
	assert.Equal(t, 0.9, result.RemoteResponse.Analysis.Confidence)

	// Locally computed fields are present alongside the remote verdict.
	require.Len(t, result.Characters, 1)
	assert.Equal(t, "JOHN", result.Characters[0].Name)
	require.NotNil(t, result.Emotions)
	assert.Equal(t, "Uplifting & Positive", result.SceneMood)
	assert.NotEmpty(t, result.EstimatedDuration)
	assert.NotEmpty(t, result.AlternativeSuggestions)

	results := history.List()
	require.Len(t, results, 1)
	assert.Equal(t, result.ID, results[0].ID)
}

func TestAnalyze_RemoteFractionalScoreRounds(t *testing.T) {
	response := remoteResponse()
	response.Analysis.NaturalnessScore = 7.5
	analyzer, _ := newTestAnalyzer(&fakeRemote{response: response})

	outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: Hello."})
	require.NoError(t, err)
	assert.Equal(t, 8, outcome.Result.Score)
}

func TestAnalyze_RemoteFailureFallsBackLocally(t *testing.T) {
	remote := &fakeRemote{err: errors.New("service unreachable")}
	analyzer, history := newTestAnalyzer(remote)

	outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: Hello there, friend."})
	require.NoError(t, err)
	assert.Equal(t, FallbackNotice, outcome.Notice)

	result := outcome.Result
	assert.Equal(t, 1, result.Score) // short text, clamped up to the floor
	assert.Equal(t, models.RiskHigh, result.Risk)
	assert.Nil(t, result.RemoteResponse)
	assert.NotEmpty(t, result.Issues)
	assert.NotEmpty(t, result.Suggestions)
	assert.Len(t, history.List(), 1)
}

func TestAnalyze_ImageOnlySkipsRemote(t *testing.T) {
	remote := &fakeRemote{response: remoteResponse()}
	analyzer, _ := newTestAnalyzer(remote)

	outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{HasImage: true})
	require.NoError(t, err)
	assert.Equal(t, 0, remote.calls)
	assert.Empty(t, outcome.Notice)

	result := outcome.Result
	assert.Equal(t, 6, result.Score)
	assert.Equal(t, models.RiskMedium, result.Risk)
	assert.False(t, result.HasText)
	assert.True(t, result.HasImage)
	assert.Nil(t, result.Emotions)
	assert.Empty(t, result.SceneMood)
	assert.Empty(t, result.EstimatedDuration)
	assert.NotNil(t, result.Characters)
	assert.Empty(t, result.Characters)
	assert.NotEmpty(t, result.AlternativeSuggestions)
}

func TestAnalyze_LocalOnlySkipsRemote(t *testing.T) {
	remote := &fakeRemote{response: remoteResponse()}
	analyzer, _ := newTestAnalyzer(remote)

	outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: Hello.", LocalOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 0, remote.calls)
	assert.Empty(t, outcome.Notice)
	assert.Nil(t, outcome.Result.RemoteResponse)
}

func TestAnalyze_RejectsOverlappingRequest(t *testing.T) {
	remote := &blockingRemote{entered: make(chan struct{}), release: make(chan struct{})}
	analyzer, _ := newTestAnalyzer(remote)

	done := make(chan struct{})
	go func() {
		defer close(done)
		analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: Hold on."})
	}()

	select {
	case <-remote.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first analysis never reached the remote client")
	}

	_, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "MARY: Me too."})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	close(remote.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("first analysis never finished")
	}

	// The guard resets once the first analysis completes.
	_, err = analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "MARY: Me too.", LocalOnly: true})
	require.NoError(t, err)
}

func TestAnalyze_UniqueIDs(t *testing.T) {
	analyzer, _ := newTestAnalyzer(nil)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		outcome, err := analyzer.Analyze(context.Background(), AnalyzeRequest{Text: "JOHN: Hello."})
		require.NoError(t, err)
		assert.False(t, seen[outcome.Result.ID], "duplicate id %s", outcome.Result.ID)
		seen[outcome.Result.ID] = true
	}
}
