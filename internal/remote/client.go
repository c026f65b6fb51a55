// internal/remote/client.go

// Package remote implements the HTTP client for the remote dialogue analysis
// service. Responses are validated against a JSON schema before any field is
// trusted; every failure mode surfaces as a remote service error so the
// orchestrator can fall back to local analysis.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

var schemaLoader = gojsonschema.NewStringLoader(responseSchema)

// Client talks to the remote analysis service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. The API key is
// optional; when set it is sent as a bearer token.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	ScriptText string `json:"script_text"`
}

// AnalyzeScript submits raw dialogue text and returns the validated response.
func (c *Client) AnalyzeScript(ctx context.Context, text string) (*models.RemoteAnalysisResponse, error) {
	if c.baseURL == "" {
		return nil, apperrors.NewRemoteService("remote analysis service is not configured", nil)
	}

	body, err := json.Marshal(analyzeRequest{ScriptText: text})
	if err != nil {
		return nil, apperrors.NewRemoteService("encoding analysis request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewRemoteService("building analysis request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewRemoteService("calling remote analysis service", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewRemoteService("reading remote analysis response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewRemoteService(
			fmt.Sprintf("remote analysis service returned %d: %s", resp.StatusCode, truncate(string(raw), 200)), nil)
	}

	if err := validateResponse(raw); err != nil {
		return nil, err
	}

	var result models.RemoteAnalysisResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperrors.NewRemoteService("decoding remote analysis response", err)
	}

	return &result, nil
}

func validateResponse(raw []byte) error {
	check, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return apperrors.NewRemoteService("validating remote analysis response", err)
	}

	if !check.Valid() {
		problems := make([]string, 0, len(check.Errors()))
		for _, desc := range check.Errors() {
			problems = append(problems, desc.String())
		}
		return apperrors.NewRemoteService(
			"remote analysis response does not match schema: "+strings.Join(problems, "; "), nil)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
