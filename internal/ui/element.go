package ui

// Element is a page element whose only mutable state is its active flag.
// Elements are owned by exactly one component, which serialises access to them.
type Element struct {
	// ID is the DOM id the element renders with.
	ID string
	// Target is the data-tab attribute of a tab button.
	Target string
	Label  string

	active bool
}

// NewElement creates an inactive element.
func NewElement(id string) *Element {
	return &Element{ID: id}
}

// NewTabButton creates a tab button pointing at target.
func NewTabButton(target, label string) *Element {
	return &Element{ID: target + "-btn", Target: target, Label: label}
}

// NewTabPanel creates the panel a button with the given target activates.
func NewTabPanel(target string) *Element {
	return &Element{ID: PanelID(target)}
}

// PanelID is the panel identifier for a tab target.
func PanelID(target string) string {
	return target + "-tab"
}

// Active reports the element's active class.
func (e *Element) Active() bool { return e.active }
