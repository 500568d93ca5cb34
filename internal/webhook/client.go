package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sozercan/truthlens/internal/analysis"
)

// maxReplyBytes bounds how much of a workflow reply is read.
const maxReplyBytes = 1 << 20

// Client posts analysis requests to an automation workflow webhook.
type Client struct {
	endpoints  map[analysis.Kind]string
	httpClient *http.Client
}

// NewClient creates a webhook client. endpoints maps each analysis kind to its
// webhook URL; both kinds must be present. A zero timeout waits indefinitely.
func NewClient(endpoints map[analysis.Kind]string, timeout time.Duration) (*Client, error) {
	for _, kind := range []analysis.Kind{analysis.TextOrURL, analysis.VideoURL} {
		if endpoints[kind] == "" {
			return nil, fmt.Errorf("webhook endpoint for %s cannot be empty", kind)
		}
	}

	owned := make(map[analysis.Kind]string, len(endpoints))
	for k, v := range endpoints {
		owned[k] = v
	}

	slog.Info("Creating webhook client",
		"fakeNews", owned[analysis.TextOrURL],
		"deepfake", owned[analysis.VideoURL],
		"timeout", timeout,
	)

	return &Client{
		endpoints:  owned,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Analyze sends one request and decodes the reply. Failures wrap
// analysis.ErrTransport, analysis.ErrStatus or analysis.ErrDecode.
func (c *Client) Analyze(ctx context.Context, req analysis.Request) (*analysis.Reply, error) {
	endpoint := c.endpoints[req.Kind]

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	slog.Debug("Posting to workflow", "type", req.Kind, "endpoint", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
		return nil, &analysis.StatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading reply: %v", analysis.ErrTransport, err)
	}

	reply, err := analysis.DecodeReply(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("Workflow replied", "type", req.Kind, "status", resp.StatusCode, "duration", time.Since(start))
	return reply, nil
}
