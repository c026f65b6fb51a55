// internal/models/remote.go
package models

// RemoteAnalysisResponse is the validated response of the remote analysis
// service. The orchestrator reads the score, risk level, primary issues,
// detected issues and recommendations; the rest is embedded for traceability.
type RemoteAnalysisResponse struct {
	Project        RemoteProject        `json:"project"`
	Analysis       RemoteAnalysis       `json:"analysis"`
	Summary        RemoteSummary        `json:"summary"`
	IssuesDetected []RemoteIssue        `json:"issues_detected"`
	Suggestions    []RemoteSuggestion   `json:"suggestions"`
	Explainability RemoteExplainability `json:"explainability"`
}

// RemoteProject identifies the analyzed project on the service side.
type RemoteProject struct {
	Title      string `json:"title"`
	ScriptName string `json:"script_name"`
}

// RemoteAnalysis carries the service's naturalness verdict.
type RemoteAnalysis struct {
	NaturalnessScore float64 `json:"naturalness_score"` // 0-10, may be fractional
	RiskLevel        string  `json:"risk_level"`
	Confidence       float64 `json:"confidence"`
}

// RemoteSummary lists the service's headline findings.
type RemoteSummary struct {
	Strengths     []string `json:"strengths"`
	PrimaryIssues []string `json:"primary_issues"`
}

// RemoteIssue is one specific problem the service detected.
type RemoteIssue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// RemoteSuggestion is one actionable recommendation.
type RemoteSuggestion struct {
	IssueType      string `json:"issue_type"`
	Recommendation string `json:"recommendation"`
}

// RemoteExplainability explains how the service arrived at its score.
type RemoteExplainability struct {
	WhyThisScore string `json:"why_this_score"`
}
