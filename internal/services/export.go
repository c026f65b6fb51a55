// internal/services/export.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

const reportTitle = "SceneSpeak AI Analysis"

// ExportResult is a rendered report ready for download.
type ExportResult struct {
	Content     []byte
	Filename    string
	ContentType string
}

// ExportService renders an analysis result as JSON, plain text or PDF.
type ExportService struct{}

// NewExportService creates the export service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Export renders result in the requested format.
func (s *ExportService) Export(result *models.AnalysisResult, format string) (*ExportResult, error) {
	switch strings.ToLower(format) {
	case "json":
		content, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding analysis result: %w", err)
		}
		return &ExportResult{
			Content:     content,
			Filename:    "scenespeak-analysis.json",
			ContentType: "application/json",
		}, nil

	case "txt", "text":
		return &ExportResult{
			Content:     []byte(s.renderText(result)),
			Filename:    "scenespeak-analysis.txt",
			ContentType: "text/plain; charset=utf-8",
		}, nil

	case "pdf":
		content, err := s.renderPDF(result)
		if err != nil {
			return nil, fmt.Errorf("rendering PDF report: %w", err)
		}
		return &ExportResult{
			Content:     content,
			Filename:    "scenespeak-analysis.pdf",
			ContentType: "application/pdf",
		}, nil

	default:
		return nil, apperrors.NewValidation(fmt.Sprintf("unsupported export format: %s", format), nil)
	}
}

// renderText writes the human-readable report. Section order is fixed:
// Score, Risk, Mood, Duration, Issues, Suggestions.
func (s *ExportService) renderText(result *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n")
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "Score: %d/10\n", result.Score)
	fmt.Fprintf(&b, "Risk Level: %s\n", result.Risk)
	fmt.Fprintf(&b, "Scene Mood: %s\n", result.SceneMood)
	fmt.Fprintf(&b, "Duration: %s\n\n", result.EstimatedDuration)

	b.WriteString("Issues:\n")
	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}

	b.WriteString("\nSuggestions:\n")
	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(&b, "- %s\n", suggestion)
	}

	return b.String()
}

func (s *ExportService) renderPDF(result *models.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Score: %d/10", result.Score), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Risk Level: "+result.Risk, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Scene Mood: "+result.SceneMood, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Duration: "+result.EstimatedDuration, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection := func(heading string, items []string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range items {
			pdf.MultiCell(0, 6, "- "+item, "", "L", false)
		}
		pdf.Ln(2)
	}

	writeSection("Issues", result.Issues)
	writeSection("Suggestions", result.Suggestions)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
