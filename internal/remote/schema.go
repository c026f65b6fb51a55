// internal/remote/schema.go
package remote

// responseSchema is the contract the remote analysis service must satisfy.
// Fields the orchestrator reads are required; everything else is optional and
// carried through opaquely. A response that fails validation is treated as a
// remote service error, never as partial data.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["analysis", "summary", "issues_detected", "suggestions"],
  "properties": {
    "project": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "script_name": {"type": "string"}
      }
    },
    "analysis": {
      "type": "object",
      "required": ["naturalness_score", "risk_level"],
      "properties": {
        "naturalness_score": {"type": "number", "minimum": 0, "maximum": 10},
        "risk_level": {"type": "string", "enum": ["Low", "Medium", "High"]},
        "confidence": {"type": "number"}
      }
    },
    "summary": {
      "type": "object",
      "required": ["primary_issues"],
      "properties": {
        "strengths": {"type": "array", "items": {"type": "string"}},
        "primary_issues": {"type": "array", "items": {"type": "string"}}
      }
    },
    "issues_detected": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "severity", "description"],
        "properties": {
          "type": {"type": "string"},
          "severity": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["recommendation"],
        "properties": {
          "issue_type": {"type": "string"},
          "recommendation": {"type": "string"}
        }
      }
    },
    "explainability": {
      "type": "object",
      "properties": {
        "why_this_score": {"type": "string"}
      }
    }
  }
}`
