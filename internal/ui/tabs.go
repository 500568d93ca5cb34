package ui

import "sync"

// TabController keeps at most one (button, panel) pair active.
type TabController struct {
	mu      sync.Mutex
	buttons []*Element
	panels  []*Element
}

func NewTabController(buttons, panels []*Element) *TabController {
	return &TabController{buttons: buttons, panels: panels}
}

// Activate deactivates every button and panel, then activates the button whose
// target matches and the panel named target + "-tab". A button without a panel
// still becomes active.
func (t *TabController) Activate(target string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range t.buttons {
		b.active = false
	}
	for _, p := range t.panels {
		p.active = false
	}

	for _, b := range t.buttons {
		if b.Target == target {
			b.active = true
		}
	}
	panelID := PanelID(target)
	for _, p := range t.panels {
		if p.ID == panelID {
			p.active = true
		}
	}
}

// Active returns the target of the active button, or "" before any activation.
func (t *TabController) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range t.buttons {
		if b.active {
			return b.Target
		}
	}
	return ""
}

// ActivePanel returns the id of the active panel, or "".
func (t *TabController) ActivePanel() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range t.panels {
		if p.active {
			return p.ID
		}
	}
	return ""
}

// TabState is the rendered state of one button and its panel.
type TabState struct {
	Target       string
	Label        string
	ButtonActive bool
	PanelActive  bool
}

// States lists every button in order together with its panel's flag.
func (t *TabController) States() []TabState {
	t.mu.Lock()
	defer t.mu.Unlock()

	panels := make(map[string]bool, len(t.panels))
	for _, p := range t.panels {
		panels[p.ID] = p.active
	}

	states := make([]TabState, 0, len(t.buttons))
	for _, b := range t.buttons {
		states = append(states, TabState{
			Target:       b.Target,
			Label:        b.Label,
			ButtonActive: b.active,
			PanelActive:  panels[PanelID(b.Target)],
		})
	}
	return states
}
