package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReplyFull(t *testing.T) {
	reply, err := DecodeReply([]byte(`{
		"confidence": 85,
		"verdict": "Likely Real",
		"keyReasons": [],
		"recommendations": ["Check source"],
		"extra": {"ignored": true}
	}`))
	require.NoError(t, err)

	res := NewResult(reply)
	assert.Equal(t, 85.0, res.Confidence)
	assert.Equal(t, "Likely Real", res.Verdict)
	assert.Empty(t, res.KeyReasons)
	assert.Equal(t, []string{"Check source"}, res.Recommendations)
	assert.Equal(t, SeverityLow, res.Severity())
}

func TestDecodeReplyEmptyObjectDefaults(t *testing.T) {
	reply, err := DecodeReply([]byte(`{}`))
	require.NoError(t, err)

	res := NewResult(reply)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, DefaultVerdict, res.Verdict)
	assert.NotNil(t, res.KeyReasons)
	assert.Empty(t, res.KeyReasons)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)
	assert.Equal(t, 0.0, res.RoundedConfidence())
}

func TestDecodeReplyCoercesListEntries(t *testing.T) {
	reply, err := DecodeReply([]byte(`{
		"keyReasons": ["text", 42, 1.5, true, null, {"a": 1}, [1, 2]],
		"recommendations": "not a list"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"text", "42", "1.5", "true", "null", `{"a":1}`, "[1,2]"}, reply.KeyReasons)
	assert.Nil(t, reply.Recommendations)
}

func TestDecodeReplyLenientScalars(t *testing.T) {
	reply, err := DecodeReply([]byte(`{"confidence": "62.4", "verdict": ""}`))
	require.NoError(t, err)

	res := NewResult(reply)
	assert.Equal(t, 62.4, res.Confidence)
	assert.Equal(t, DefaultVerdict, res.Verdict, "empty verdict falls back to the placeholder")
	assert.Equal(t, SeverityMedium, res.Severity())

	reply, err = DecodeReply([]byte(`{"confidence": "n/a", "verdict": 7}`))
	require.NoError(t, err)
	res = NewResult(reply)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, "7", res.Verdict)
}

func TestDecodeReplyRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `[]`, `"text"`, `null`, `42`, `{"confidence":`, `<html>`} {
		_, err := DecodeReply([]byte(body))
		assert.Truef(t, errors.Is(err, ErrDecode), "body %q: expected ErrDecode, got %v", body, err)
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Severity
	}{
		{100, SeverityLow},
		{70.01, SeverityLow},
		{70, SeverityMedium},
		{40.5, SeverityMedium},
		{40, SeverityHigh},
		{0, SeverityHigh},
		{-5, SeverityHigh},
		{math.NaN(), SeverityHigh},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Classify(tt.confidence), "confidence %v", tt.confidence)
	}
	assert.Equal(t, "score-low", SeverityLow.Class())
	assert.Equal(t, "score-medium", SeverityMedium.Class())
	assert.Equal(t, "score-high", SeverityHigh.Class())
}

func TestRoundedConfidence(t *testing.T) {
	assert.Equal(t, 85.0, Result{Confidence: 84.5}.RoundedConfidence())
	assert.Equal(t, 84.0, Result{Confidence: 84.49}.RoundedConfidence())
	assert.Equal(t, -2.0, Result{Confidence: -2.5}.RoundedConfidence())
	assert.Equal(t, 0.0, Result{Confidence: math.Inf(1)}.RoundedConfidence())
	assert.Equal(t, 1e20, Result{Confidence: 1e20}.RoundedConfidence())
	assert.Equal(t, -1e20, Result{Confidence: -1e20}.RoundedConfidence())
}

func TestConfidenceText(t *testing.T) {
	assert.Equal(t, "85", Result{Confidence: 84.5}.ConfidenceText())
	assert.Equal(t, "0", Result{Confidence: -0.3}.ConfidenceText())
	assert.Equal(t, "0", Result{Confidence: math.NaN()}.ConfidenceText())
	assert.Equal(t, "100000000000000000000", Result{Confidence: 1e20}.ConfidenceText())
	assert.Equal(t, "-100000000000000000000", Result{Confidence: -1e20}.ConfidenceText())
	assert.Equal(t, SeverityLow, Result{Confidence: 1e20}.Severity())
	assert.Equal(t, SeverityHigh, Result{Confidence: -1e20}.Severity())
}

func TestDecodeReplyNonFiniteConfidenceIsMissing(t *testing.T) {
	for _, raw := range []string{`"NaN"`, `"nan"`, `"Inf"`, `"-Inf"`, `"Infinity"`, `"+infinity"`, `1e400`} {
		t.Run(raw, func(t *testing.T) {
			reply, err := DecodeReply([]byte(`{"confidence": ` + raw + `, "verdict": "x"}`))
			require.NoError(t, err)
			assert.Nil(t, reply.Confidence)

			res := NewResult(reply)
			assert.Equal(t, 0.0, res.Confidence)
			assert.Equal(t, "x", res.Verdict)
		})
	}
}

func TestKindWireFormat(t *testing.T) {
	data, err := json.Marshal(Request{Content: "https://example.com/clip.mp4", Kind: VideoURL})
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"https://example.com/clip.mp4","type":"deepfake"}`, string(data))

	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"content":"hello","type":"fakeNews"}`), &req))
	assert.Equal(t, TextOrURL, req.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"content":"hello","type":"audio"}`), &req))

	k, err := ParseKind("video")
	require.NoError(t, err)
	assert.Equal(t, VideoURL, k)
}

func TestStatusErrorMatchesSentinel(t *testing.T) {
	var err error = &StatusError{StatusCode: 502}
	assert.True(t, errors.Is(err, ErrStatus))
	assert.Contains(t, err.Error(), "502")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 502, se.StatusCode)
}
