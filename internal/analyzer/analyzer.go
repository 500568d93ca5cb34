package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sozercan/truthlens/internal/analysis"
	"github.com/sozercan/truthlens/internal/ui"
)

// User-facing alert messages. Failure detail never reaches the user.
const (
	MsgMissingText  = "Please enter text or a URL for analysis"
	MsgMissingVideo = "Please enter a video URL"
	MsgTextFailed   = "Analysis failed. Please try again."
	MsgVideoFailed  = "Video analysis failed. Please try again."
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// ResultSink displays a finished analysis.
type ResultSink interface {
	Show(kind analysis.Kind, res analysis.Result) error
}

// Form is what one analysis kind owns on the page: its submit control, the
// place its results go and where its alerts are shown.
type Form struct {
	Control *ui.SubmitControl
	Results ResultSink
	Alerts  Alerter
}

type Analyzer struct {
	backend analysis.Backend
}

func New(backend analysis.Backend) *Analyzer {
	return &Analyzer{
		backend: backend,
	}
}

// Analyze runs one request against the backend and maps the reply to its
// display model.
func (a *Analyzer) Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return analysis.Result{}, analysis.ErrMissingInput
	}

	slog.Info("Starting analysis", "type", req.Kind, "contentLength", len(req.Content))
	startTime := time.Now()

	reply, err := a.backend.Analyze(ctx, req)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%s analysis: %w", req.Kind, err)
	}

	res := analysis.NewResult(reply)
	slog.Info("Analysis complete", "type", req.Kind, "verdict", res.Verdict, "confidence", res.Confidence, "duration", time.Since(startTime))
	return res, nil
}

// SubmitTextAnalysis checks pasted text, or the article URL when no text was
// given. With both empty it alerts and returns without touching the control.
func (a *Analyzer) SubmitTextAnalysis(ctx context.Context, f Form, text, url string) {
	text, url = strings.TrimSpace(text), strings.TrimSpace(url)
	if text == "" && url == "" {
		f.Alerts.Alert(MsgMissingText)
		return
	}

	content := text
	if content == "" {
		content = url
	}
	a.submit(ctx, f, analysis.Request{Content: content, Kind: analysis.TextOrURL}, MsgTextFailed)
}

// SubmitVideoAnalysis checks a video URL for manipulation.
func (a *Analyzer) SubmitVideoAnalysis(ctx context.Context, f Form, videoURL string) {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		f.Alerts.Alert(MsgMissingVideo)
		return
	}
	a.submit(ctx, f, analysis.Request{Content: videoURL, Kind: analysis.VideoURL}, MsgVideoFailed)
}

func (a *Analyzer) submit(ctx context.Context, f Form, req analysis.Request, failure string) {
	restore, ok := f.Control.Begin()
	if !ok {
		slog.Debug("Submission ignored while control is busy", "control", f.Control.ID())
		return
	}
	defer restore()

	res, err := a.Analyze(ctx, req)
	if err != nil {
		slog.Error("Analysis request failed", "type", req.Kind, "error", err)
		f.Alerts.Alert(failure)
		return
	}

	if err := f.Results.Show(req.Kind, res); err != nil {
		slog.Error("Rendering analysis result failed", "type", req.Kind, "error", err)
		f.Alerts.Alert(failure)
	}
}
