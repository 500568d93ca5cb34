package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sozercan/truthlens/internal/analysis"
)

const replyFormat = `Answer with a single JSON object and nothing else:
{"confidence": <number 0-100>, "verdict": "<short verdict>", "keyReasons": ["..."], "recommendations": ["..."]}`

var FakeNewsPrompt = `You are a fact-checking assistant. The user sends either the text of a news item or the URL of an article.
Judge how likely it is to be misinformation. "confidence" is your confidence that the content is genuine:
high values mean low risk. Give the main reasons for your judgement and what the reader should do next.
` + replyFormat

var DeepfakePrompt = `You are a media forensics assistant. The user sends the URL of a video.
Judge how likely the video is authentic rather than synthetically generated or manipulated.
"confidence" is the authenticity score. Give the main reasons for your judgement and what the viewer should do next.
` + replyFormat

// Backend answers analysis requests with a chat model instead of the workflow webhook.
type Backend struct {
	provider Provider
}

func NewBackend(provider Provider) *Backend {
	return &Backend{provider: provider}
}

func (b *Backend) Analyze(ctx context.Context, req analysis.Request) (*analysis.Reply, error) {
	prompt := FakeNewsPrompt
	if req.Kind == analysis.VideoURL {
		prompt = DeepfakePrompt
	}

	resp, err := b.provider.Analyze(ctx, []string{prompt}, []string{req.Content})
	if err != nil {
		slog.Error("LLM analysis failed", "error", err)
		return nil, fmt.Errorf("%w: LLM analysis failed: %v", analysis.ErrTransport, err)
	}
	slog.Debug("LLM replied", "type", req.Kind, "tokensUsed", resp.Usage.TotalTokens)

	return analysis.DecodeReply([]byte(extractJSON(resp.Content)))
}

// extractJSON strips markdown fences and any prose around the outermost object.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}
