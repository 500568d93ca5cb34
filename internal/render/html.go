package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/sozercan/truthlens/internal/analysis"
	"github.com/sozercan/truthlens/internal/ui"
	"github.com/sozercan/truthlens/web"
)

// Renderer renders result fragments and the full page from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type resultView struct {
	Verdict         string
	Confidence      string
	SeverityClass   string
	Unit            string
	KeyReasons      []string
	Recommendations []string
}

func newResultView(kind analysis.Kind, res analysis.Result) resultView {
	v := resultView{
		Verdict:         res.Verdict,
		Confidence:      res.ConfidenceText(),
		KeyReasons:      res.KeyReasons,
		Recommendations: res.Recommendations,
	}
	// Only the fake news check grades its score; the video check shows the raw percentage.
	switch kind {
	case analysis.VideoURL:
		v.Unit = "Authentic"
	default:
		v.Unit = "Risk"
		v.SeverityClass = res.Severity().Class()
	}
	return v
}

// Result renders the results-panel fragment for one analysis.
func (r *Renderer) Result(kind analysis.Kind, res analysis.Result) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "result", newResultView(kind, res)); err != nil {
		return "", fmt.Errorf("rendering %s result: %w", kind, err)
	}
	return template.HTML(buf.String()), nil
}

// Page writes the whole page.
func (r *Renderer) Page(w io.Writer, v ui.PageView) error {
	return r.tmpl.ExecuteTemplate(w, "page", v)
}

// PanelSink renders results into a page's results panel.
type PanelSink struct {
	Renderer *Renderer
	Panel    *ui.ResultsPanel
}

// Show replaces the panel content only once rendering succeeded.
func (s PanelSink) Show(kind analysis.Kind, res analysis.Result) error {
	html, err := s.Renderer.Result(kind, res)
	if err != nil {
		return err
	}
	s.Panel.Set(html)
	return nil
}
