package apimodels

type AnalysisRequest struct {
	// Content is the text, article URL or video URL to analyze
	Content string `json:"content"`

	// Type is "fakeNews" or "deepfake"
	Type string `json:"type"`
}
