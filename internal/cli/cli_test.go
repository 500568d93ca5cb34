package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/truthlens/internal/analyzer"
	"github.com/sozercan/truthlens/internal/config"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "truthlens.yaml")
	content := fmt.Sprintf(`analysis:
  backend: webhook
webhook:
  fake_news_url: %s/news
  deepfake_url: %s/video
log:
  level: error
`, baseURL, baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type captured struct {
	path    string
	payload map[string]string
}

func startWorkflow(t *testing.T, status int, body string) (string, func() []captured) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []captured
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		calls = append(calls, captured{path: r.URL.Path, payload: payload})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts.URL, func() []captured {
		mu.Lock()
		defer mu.Unlock()
		return append([]captured(nil), calls...)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("1.2.3", "abc123")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeText(t *testing.T) {
	base, received := startWorkflow(t, http.StatusOK, `{"confidence": 35, "verdict": "Likely Fake", "keyReasons": ["no sources"]}`)
	cfg := writeConfig(t, base)

	out, _, err := execute(t, "analyze", "--config", cfg, "--no-color", "The", "moon", "is", "cheese")
	require.NoError(t, err)

	assert.Equal(t, "Likely Fake  35% Risk\n\n⚠ Key Reasons:\n  • no sources\n", out)
	calls := received()
	require.Len(t, calls, 1)
	assert.Equal(t, "/news", calls[0].path)
	assert.Equal(t, map[string]string{"content": "The moon is cheese", "type": "fakeNews"}, calls[0].payload)
}

func TestAnalyzeURLFallback(t *testing.T) {
	base, received := startWorkflow(t, http.StatusOK, `{}`)
	cfg := writeConfig(t, base)

	out, _, err := execute(t, "analyze", "-c", cfg, "--no-color", "--url", "https://example.com/story")
	require.NoError(t, err)

	assert.Equal(t, "Analysis Complete  0% Risk\n", out)
	calls := received()
	require.Len(t, calls, 1)
	assert.Equal(t, "https://example.com/story", calls[0].payload["content"])
}

func TestAnalyzeVideo(t *testing.T) {
	base, received := startWorkflow(t, http.StatusOK, `{"confidence": 97.6, "verdict": "Authentic"}`)
	cfg := writeConfig(t, base)

	out, _, err := execute(t, "analyze", "-c", cfg, "--no-color", "--video", "https://example.com/clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, "Authentic  98% Authentic\n", out)
	calls := received()
	require.Len(t, calls, 1)
	assert.Equal(t, "/video", calls[0].path)
	assert.Equal(t, "deepfake", calls[0].payload["type"])
}

func TestAnalyzeMissingInput(t *testing.T) {
	base, received := startWorkflow(t, http.StatusOK, `{}`)
	cfg := writeConfig(t, base)

	out, errOut, err := execute(t, "analyze", "-c", cfg, "--no-color", "--video", "  ")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Empty(t, out)
	assert.Contains(t, errOut, analyzer.MsgMissingVideo)
	assert.Empty(t, received())
}

func TestAnalyzeWorkflowFailure(t *testing.T) {
	base, _ := startWorkflow(t, http.StatusInternalServerError, `{"message":"boom"}`)
	cfg := writeConfig(t, base)

	out, errOut, err := execute(t, "analyze", "-c", cfg, "--no-color", "some claim")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Empty(t, out)
	assert.Contains(t, errOut, analyzer.MsgTextFailed)
}

func TestAnalyzeBadConfig(t *testing.T) {
	_, _, err := execute(t, "analyze", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "text")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "truthlens 1.2.3 (abc123)")
}

func TestNewBackend(t *testing.T) {
	cfg := &config.Config{
		Analysis: config.AnalysisConfig{Backend: config.BackendWebhook},
		Webhook:  config.WebhookConfig{FakeNewsURL: "http://localhost/a", DeepfakeURL: "http://localhost/b"},
	}
	backend, err := newBackend(cfg)
	require.NoError(t, err)
	assert.NotNil(t, backend)

	cfg.Webhook.DeepfakeURL = ""
	_, err = newBackend(cfg)
	assert.Error(t, err)

	cfg.Analysis.Backend = config.BackendOpenAI
	cfg.OpenAI = config.OpenAIConfig{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"}
	backend, err = newBackend(cfg)
	require.NoError(t, err)
	assert.NotNil(t, backend)
}
