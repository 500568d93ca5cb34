package ui

import (
	"html/template"
	"sync"
)

// SubmitControl is a submit button that shows a loading label while its
// request is in flight. A disabled control accepts no further submissions.
type SubmitControl struct {
	mu           sync.Mutex
	id           string
	idleLabel    string
	loadingLabel string
	label        string
	disabled     bool
}

func NewSubmitControl(id, idleLabel, loadingLabel string) *SubmitControl {
	return &SubmitControl{
		id:           id,
		idleLabel:    idleLabel,
		loadingLabel: loadingLabel,
		label:        idleLabel,
	}
}

// Begin disables the control and swaps in the loading label. ok is false when
// the control was already disabled; restore is then a no-op. Otherwise restore
// puts the idle label back and re-enables the control, once.
func (c *SubmitControl) Begin() (restore func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disabled {
		return func() {}, false
	}
	c.disabled = true
	c.label = c.loadingLabel

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.label = c.idleLabel
			c.disabled = false
			c.mu.Unlock()
		})
	}, true
}

func (c *SubmitControl) ID() string { return c.id }

func (c *SubmitControl) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label
}

func (c *SubmitControl) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

// ResultsPanel holds the rendered result of the last successful analysis.
type ResultsPanel struct {
	mu      sync.Mutex
	id      string
	content template.HTML
}

func NewResultsPanel(id string) *ResultsPanel {
	return &ResultsPanel{id: id}
}

func (p *ResultsPanel) ID() string { return p.id }

// Set replaces the panel content.
func (p *ResultsPanel) Set(content template.HTML) {
	p.mu.Lock()
	p.content = content
	p.mu.Unlock()
}

func (p *ResultsPanel) Content() template.HTML {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content
}

// Alerts queues user-facing alert messages until the page shows them.
type Alerts struct {
	mu      sync.Mutex
	pending []string
}

func (a *Alerts) Alert(msg string) {
	a.mu.Lock()
	a.pending = append(a.pending, msg)
	a.mu.Unlock()
}

// Drain returns the queued messages and clears the queue.
func (a *Alerts) Drain() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := a.pending
	a.pending = nil
	return msgs
}

// Pending returns a copy of the queued messages without consuming them.
func (a *Alerts) Pending() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.pending...)
}

// Ack drops the first n queued messages once they have been shown. Alerts
// queued after the matching Pending call stay queued.
func (a *Alerts) Ack(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n > len(a.pending) {
		n = len(a.pending)
	}
	if n <= 0 {
		return
	}
	a.pending = append([]string(nil), a.pending[n:]...)
	if len(a.pending) == 0 {
		a.pending = nil
	}
}
