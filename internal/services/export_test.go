// internal/services/export_test.go
package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

func exportableResult() *models.AnalysisResult {
	emotions := models.EmotionProfile{Happy: 3, Sad: 1}
	return &models.AnalysisResult{
		ID:                "01HZX0000000000000000000B1",
		Score:             7,
		Risk:              models.RiskLow,
		Issues:            []string{"No major issues detected."},
		Suggestions:       []string{"Dialogue looks natural and well-structured!", "Consider testing with actors for real-world feedback."},
		HasText:           true,
		Emotions:          &emotions,
		SceneMood:         "Uplifting & Positive",
		EstimatedDuration: "1:02",
		Timestamp:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestExport_TextSectionOrder(t *testing.T) {
	export, err := NewExportService().Export(exportableResult(), "txt")
	require.NoError(t, err)

	assert.Equal(t, "scenespeak-analysis.txt", export.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", export.ContentType)

	report := string(export.Content)
	assert.True(t, strings.HasPrefix(report, reportTitle+"\n"))

	sections := []string{
		"Score: 7/10",
		"Risk Level: Low",
		"Scene Mood: Uplifting & Positive",
		"Duration: 1:02",
		"Issues:",
		"- No major issues detected.",
		"Suggestions:",
		"- Dialogue looks natural and well-structured!",
	}
	position := -1
	for _, section := range sections {
		index := strings.Index(report, section)
		require.GreaterOrEqual(t, index, 0, "missing section %q", section)
		assert.Greater(t, index, position, "section %q out of order", section)
		position = index
	}
}

func TestExport_TextAcceptsBothAliases(t *testing.T) {
	svc := NewExportService()

	short, err := svc.Export(exportableResult(), "txt")
	require.NoError(t, err)
	long, err := svc.Export(exportableResult(), "text")
	require.NoError(t, err)

	assert.Equal(t, short.Content, long.Content)
}

func TestExport_JSONRoundTrip(t *testing.T) {
	want := exportableResult()
	export, err := NewExportService().Export(want, "json")
	require.NoError(t, err)

	assert.Equal(t, "scenespeak-analysis.json", export.Filename)
	assert.Equal(t, "application/json", export.ContentType)

	var got models.AnalysisResult
	require.NoError(t, json.Unmarshal(export.Content, &got))
	assert.Equal(t, *want, got)
}

func TestExport_PDF(t *testing.T) {
	export, err := NewExportService().Export(exportableResult(), "pdf")
	require.NoError(t, err)

	assert.Equal(t, "scenespeak-analysis.pdf", export.Filename)
	assert.Equal(t, "application/pdf", export.ContentType)
	assert.True(t, strings.HasPrefix(string(export.Content), "%PDF"))
}

func TestExport_FormatCaseInsensitive(t *testing.T) {
	export, err := NewExportService().Export(exportableResult(), "JSON")
	require.NoError(t, err)
	assert.Equal(t, "application/json", export.ContentType)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := NewExportService().Export(exportableResult(), "docx")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
