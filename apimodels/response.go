package apimodels

type AnalysisResponse struct {
	// Verdict returned by the workflow, or the placeholder
	Verdict string `json:"verdict"`

	// Confidence rounded the way the page shows it
	Confidence float64 `json:"confidence"`

	// RawConfidence as received
	RawConfidence float64 `json:"rawConfidence"`

	// Severity is only set for fake news analyses: low, medium or high risk
	Severity string `json:"severity,omitempty"`

	KeyReasons      []string `json:"keyReasons"`
	Recommendations []string `json:"recommendations"`

	// HTML is the rendered results-panel fragment
	HTML string `json:"html"`

	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Type of analysis that ran
	Type string `json:"type"`

	// Time taken for analysis
	Duration string `json:"duration"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
