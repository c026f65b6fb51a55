// internal/api/handlers.go
package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scenespeak/scenespeak/internal/services"
)

// Handler holds the API's service collaborators.
type Handler struct {
	analyzer *services.AnalyzerService
	history  *services.HistoryService
	export   *services.ExportService
	resp     *ResponseHelper
}

// NewHandler creates the API handler.
func NewHandler(analyzer *services.AnalyzerService, history *services.HistoryService, export *services.ExportService) *Handler {
	return &Handler{
		analyzer: analyzer,
		history:  history,
		export:   export,
		resp:     NewResponseHelper(),
	}
}

type analyzeRequestBody struct {
	Text     string `json:"text"`
	HasImage bool   `json:"has_image"`
}

// AnalyzeText runs one analysis over the submitted dialogue.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var body analyzeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.resp.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	outcome, err := h.analyzer.Analyze(c.Request.Context(), services.AnalyzeRequest{
		Text:     body.Text,
		HasImage: body.HasImage,
	})
	if err != nil {
		h.resp.FromAppError(c, err)
		return
	}

	h.resp.Success(c, outcome)
}

// GetHistory returns the retained analysis results, newest first.
func (h *Handler) GetHistory(c *gin.Context) {
	h.resp.Success(c, h.history.List())
}

// ClearHistory empties the analysis history.
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		h.resp.FromAppError(c, err)
		return
	}
	h.resp.Success(c, nil, "analysis history cleared")
}

// ExportResult downloads a history entry (default: the most recent) in the
// requested format.
func (h *Handler) ExportResult(c *gin.Context) {
	index := 0
	if raw := c.Query("index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.resp.BadRequest(c, "index must be a non-negative integer")
			return
		}
		index = parsed
	}

	results := h.history.List()
	if index >= len(results) {
		h.resp.NotFound(c, "no analysis result at that history index")
		return
	}

	export, err := h.export.Export(&results[index], c.Param("format"))
	if err != nil {
		h.resp.FromAppError(c, err)
		return
	}

	h.resp.FileResponse(c, export.Content, export.Filename, export.ContentType)
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	h.resp.Success(c, gin.H{"status": "ok"})
}
