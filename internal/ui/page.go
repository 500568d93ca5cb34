package ui

import "html/template"

// Tab targets of the two analysis panels.
const (
	TabFakeNews = "fake-news"
	TabDeepfake = "deepfake"
)

// Element ids the page template relies on.
const (
	NewsControlID  = "analyzeBtn"
	NewsResultsID  = "resultsContent"
	VideoControlID = "analyzeVideoBtn"
	VideoResultsID = "videoResultsContent"
)

// AnalysisForm pairs a submit control with the results panel it fills.
type AnalysisForm struct {
	Control *SubmitControl
	Results *ResultsPanel
}

// Page is the component tree of one visitor's page. Components are built once
// and all mutation goes through their methods.
type Page struct {
	Nav    *NavigationToggle
	Tabs   *TabController
	News   AnalysisForm
	Video  AnalysisForm
	Alerts *Alerts
}

// NewPage builds the page with the fake news tab showing, as the markup does on load.
func NewPage() *Page {
	buttons := []*Element{
		NewTabButton(TabFakeNews, "Fake News Detector"),
		NewTabButton(TabDeepfake, "Deepfake Analyzer"),
	}
	panels := []*Element{
		NewTabPanel(TabFakeNews),
		NewTabPanel(TabDeepfake),
	}

	p := &Page{
		Nav:  NewNavigationToggle(NewElement("hamburger"), NewElement("nav-menu")),
		Tabs: NewTabController(buttons, panels),
		News: AnalysisForm{
			Control: NewSubmitControl(NewsControlID, "Analyze Content", "Analyzing..."),
			Results: NewResultsPanel(NewsResultsID),
		},
		Video: AnalysisForm{
			Control: NewSubmitControl(VideoControlID, "Analyze Video", "Analyzing Video..."),
			Results: NewResultsPanel(VideoResultsID),
		},
		Alerts: &Alerts{},
	}
	p.Tabs.Activate(TabFakeNews)
	return p
}

// FormView is the rendered state of an AnalysisForm.
type FormView struct {
	ControlID string
	Label     string
	Loading   bool
	ResultsID string
	Results   template.HTML
}

// PageView is everything the page template needs.
type PageView struct {
	MenuOpen bool
	Tabs     []TabState
	News     FormView
	Video    FormView
	Alerts   []string
}

// Snapshot captures the page for rendering. Alerts are only copied; call
// Alerts.Ack with len(view.Alerts) once the view was delivered.
func (p *Page) Snapshot() PageView {
	return PageView{
		MenuOpen: p.Nav.Open(),
		Tabs:     p.Tabs.States(),
		News:     formView(p.News),
		Video:    formView(p.Video),
		Alerts:   p.Alerts.Pending(),
	}
}

func formView(f AnalysisForm) FormView {
	return FormView{
		ControlID: f.Control.ID(),
		Label:     f.Control.Label(),
		Loading:   f.Control.Disabled(),
		ResultsID: f.Results.ID(),
		Results:   f.Results.Content(),
	}
}
