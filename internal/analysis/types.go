package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind selects which analysis the remote workflow runs.
type Kind int

const (
	// TextOrURL is the fake news check over pasted text or an article URL.
	TextOrURL Kind = iota
	// VideoURL is the deepfake check over a video URL.
	VideoURL
)

const (
	wireFakeNews = "fakeNews"
	wireDeepfake = "deepfake"
)

// WireType is the value sent in the "type" field of the webhook payload.
func (k Kind) WireType() string {
	switch k {
	case VideoURL:
		return wireDeepfake
	default:
		return wireFakeNews
	}
}

func (k Kind) String() string {
	return k.WireType()
}

// ParseKind accepts the wire names as well as the short names used on the command line.
func ParseKind(s string) (Kind, error) {
	switch s {
	case wireFakeNews, "news", "text", "url":
		return TextOrURL, nil
	case wireDeepfake, "video":
		return VideoURL, nil
	default:
		return 0, fmt.Errorf("unknown analysis type %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.WireType())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Request is the payload posted to the workflow endpoint.
type Request struct {
	Content string `json:"content"`
	Kind    Kind   `json:"type"`
}

// Backend runs one analysis request against a remote service.
type Backend interface {
	Analyze(ctx context.Context, req Request) (*Reply, error)
}

// DefaultVerdict is shown when the reply carries no verdict.
const DefaultVerdict = "Analysis Complete"

// Result is the display model built from a reply.
type Result struct {
	Confidence      float64  `json:"confidence"`
	Verdict         string   `json:"verdict"`
	KeyReasons      []string `json:"keyReasons"`
	Recommendations []string `json:"recommendations"`
}

// NewResult applies the display defaults to a reply. A nil reply yields the all-default result.
func NewResult(reply *Reply) Result {
	res := Result{
		Verdict:         DefaultVerdict,
		KeyReasons:      []string{},
		Recommendations: []string{},
	}
	if reply == nil {
		return res
	}
	if reply.Confidence != nil {
		res.Confidence = *reply.Confidence
	}
	if reply.Verdict != nil && *reply.Verdict != "" {
		res.Verdict = *reply.Verdict
	}
	res.KeyReasons = append(res.KeyReasons, reply.KeyReasons...)
	res.Recommendations = append(res.Recommendations, reply.Recommendations...)
	return res
}

// RoundedConfidence rounds half up, the way the page always displayed it.
// The score is unbounded, so the result stays a float64.
func (r Result) RoundedConfidence() float64 {
	if math.IsNaN(r.Confidence) || math.IsInf(r.Confidence, 0) {
		return 0
	}
	return math.Floor(r.Confidence + 0.5)
}

// ConfidenceText is the rounded score as shown on the badge, without exponent.
func (r Result) ConfidenceText() string {
	return strconv.FormatFloat(r.RoundedConfidence(), 'f', 0, 64)
}

// Severity classifies the confidence score of a fake news result.
func (r Result) Severity() Severity {
	return Classify(r.Confidence)
}

// Severity is the three-tier risk styling of a fake news result.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Classify maps a confidence score to its risk tier. Scores above 70 are low risk,
// above 40 medium, everything else (NaN included) high.
func Classify(confidence float64) Severity {
	switch {
	case confidence > 70:
		return SeverityLow
	case confidence > 40:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// Class is the CSS class carried by the confidence badge.
func (s Severity) Class() string {
	return "score-" + string(s)
}
