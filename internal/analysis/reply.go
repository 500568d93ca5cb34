package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reply is the decoded workflow response. Every field is optional; list entries
// have already been coerced to text.
type Reply struct {
	Confidence      *float64
	Verdict         *string
	KeyReasons      []string
	Recommendations []string
}

// DecodeReply parses a workflow response body. The body must be a JSON object;
// anything else is reported as ErrDecode.
func DecodeReply(data []byte) (*Reply, error) {
	var reply Reply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &reply, nil
}

// UnmarshalJSON accepts any object shape. Fields of an unexpected type fall back to
// their defaults instead of failing the whole reply.
func (r *Reply) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("reply is not a JSON object")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	*r = Reply{
		Confidence:      number(raw["confidence"]),
		Verdict:         verdict(raw["verdict"]),
		KeyReasons:      texts(rawList(raw["keyReasons"])),
		Recommendations: texts(rawList(raw["recommendations"])),
	}
	return nil
}

func rawList(v json.RawMessage) []json.RawMessage {
	if len(v) == 0 {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(v, &list); err != nil {
		return nil
	}
	return list
}

func number(v json.RawMessage) *float64 {
	if len(v) == 0 || string(v) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return &f
	}
	// numeric strings such as "85" are still scores
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}
	return nil
}

func verdict(v json.RawMessage) *string {
	if len(v) == 0 || string(v) == "null" {
		return nil
	}
	s := Text(v)
	return &s
}

func texts(list []json.RawMessage) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, Text(item))
	}
	return out
}

// Text returns the textual form of a JSON value: strings unquoted, numbers in
// shortest form, everything else as compact JSON.
func Text(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || string(v) == "null" {
		return "null"
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err == nil {
		return buf.String()
	}
	return string(v)
}
