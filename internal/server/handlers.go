package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sozercan/truthlens/apimodels"
	"github.com/sozercan/truthlens/internal/analysis"
	"github.com/sozercan/truthlens/internal/analyzer"
	"github.com/sozercan/truthlens/internal/render"
	"github.com/sozercan/truthlens/internal/session"
	"github.com/sozercan/truthlens/internal/ui"
)

const maxRequestBytes = 1 << 20

// page returns the visitor's page, starting a session when needed.
func (s *Server) page(w http.ResponseWriter, r *http.Request) *ui.Page {
	var id string
	if c, err := r.Cookie(session.CookieName); err == nil {
		id = c.Value
	}

	id, page, created := s.sessions.Resolve(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return page
}

func (s *Server) form(f ui.AnalysisForm, alerts *ui.Alerts) analyzer.Form {
	return analyzer.Form{
		Control: f.Control,
		Results: render.PanelSink{Renderer: s.renderer, Panel: f.Results},
		Alerts:  alerts,
	}
}

// handleIndex renders the page. The menu and tab query parameters stand in for
// clicks on the hamburger, the nav links and the tab buttons.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := s.page(w, r)

	q := r.URL.Query()
	changed := false
	switch q.Get("menu") {
	case "toggle":
		page.Nav.Toggle()
		changed = true
	case "close":
		page.Nav.LinkActivated()
		changed = true
	}
	if tab := q.Get("tab"); tab != "" {
		page.Tabs.Activate(tab)
		changed = true
	}
	if changed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	view := page.Snapshot()
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, view); err != nil {
		slog.Error("Rendering page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	// alerts count as shown once the page made it into the buffer
	page.Alerts.Ack(len(view.Alerts))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleNewsSubmit(w http.ResponseWriter, r *http.Request) {
	page := s.page(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	// The submission outlives a closed browser tab, like an in-flight fetch.
	ctx := context.WithoutCancel(r.Context())
	s.analyzer.SubmitTextAnalysis(ctx, s.form(page.News, page.Alerts), r.PostFormValue("newsText"), r.PostFormValue("newsUrl"))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleVideoSubmit(w http.ResponseWriter, r *http.Request) {
	page := s.page(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	s.analyzer.SubmitVideoAnalysis(ctx, s.form(page.Video, page.Alerts), r.PostFormValue("videoUrl"))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	kind, err := analysis.ParseKind(req.Type)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Debug("Received analysis request", "type", kind)
	start := time.Now()

	res, err := s.analyzer.Analyze(r.Context(), analysis.Request{Content: req.Content, Kind: kind})
	switch {
	case errors.Is(err, analysis.ErrMissingInput):
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: missingMessage(kind)})
		return
	case err != nil:
		slog.Error("Analysis request failed", "error", err)
		writeJSON(w, http.StatusBadGateway, apimodels.ErrorResponse{Error: failureMessage(kind)})
		return
	}

	html, err := s.renderer.Result(kind, res)
	if err != nil {
		slog.Error("Rendering analysis result failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apimodels.ErrorResponse{Error: failureMessage(kind)})
		return
	}

	resp := apimodels.AnalysisResponse{
		Verdict:         res.Verdict,
		Confidence:      res.RoundedConfidence(),
		RawConfidence:   res.Confidence,
		KeyReasons:      res.KeyReasons,
		Recommendations: res.Recommendations,
		HTML:            string(html),
		Metadata: apimodels.AnalysisMetadata{
			Type:     kind.WireType(),
			Duration: time.Since(start).String(),
		},
	}
	if kind == analysis.TextOrURL {
		resp.Severity = string(res.Severity())
	}

	slog.Debug("Analysis request completed successfully", "verdict", resp.Verdict)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func missingMessage(kind analysis.Kind) string {
	if kind == analysis.VideoURL {
		return analyzer.MsgMissingVideo
	}
	return analyzer.MsgMissingText
}

func failureMessage(kind analysis.Kind) string {
	if kind == analysis.VideoURL {
		return analyzer.MsgVideoFailed
	}
	return analyzer.MsgTextFailed
}

// writeJSON encodes before committing the status so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("Encoding response failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
