package ui

import "sync"

// NavigationToggle opens and closes the mobile menu. With either element
// missing it is inert.
type NavigationToggle struct {
	mu      sync.Mutex
	control *Element
	menu    *Element
}

func NewNavigationToggle(control, menu *Element) *NavigationToggle {
	return &NavigationToggle{control: control, menu: menu}
}

func (n *NavigationToggle) inert() bool {
	return n == nil || n.control == nil || n.menu == nil
}

// Toggle flips the hamburger control and the menu together.
func (n *NavigationToggle) Toggle() {
	if n.inert() {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	open := !n.control.active
	n.control.active = open
	n.menu.active = open
}

// LinkActivated closes the menu, whatever state it was in.
func (n *NavigationToggle) LinkActivated() {
	if n.inert() {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	n.control.active = false
	n.menu.active = false
}

// Open reports whether the menu is showing.
func (n *NavigationToggle) Open() bool {
	if n.inert() {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.menu.active
}

// ControlActive reports the hamburger's own flag.
func (n *NavigationToggle) ControlActive() bool {
	if n.inert() {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.control.active
}
