// Package shortcuts maps window key events to timer commands.
package shortcuts

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Action is a timer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
)

// Resolve maps a key press to an action. Nothing fires while a text entry
// has focus, and R combined with Ctrl or Super is left to the system.
func Resolve(key fyne.KeyName, modifiers fyne.KeyModifier, textFocused bool) Action {
	if textFocused {
		return ActionNone
	}
	switch key {
	case fyne.KeySpace:
		return ActionToggle
	case fyne.KeyR:
		if modifiers&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0 {
			return ActionNone
		}
		return ActionReset
	default:
		return ActionNone
	}
}

// Tracker derives the held modifiers from raw key-down and key-up events.
type Tracker struct {
	mu   sync.Mutex
	held map[fyne.KeyName]bool
}

// NewTracker creates a Tracker with nothing held.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[fyne.KeyName]bool)}
}

// Down records a pressed key.
func (tracker *Tracker) Down(key fyne.KeyName) {
	if modifierFor(key) == 0 {
		return
	}
	tracker.mu.Lock()
	tracker.held[key] = true
	tracker.mu.Unlock()
}

// Up records a released key.
func (tracker *Tracker) Up(key fyne.KeyName) {
	tracker.mu.Lock()
	delete(tracker.held, key)
	tracker.mu.Unlock()
}

// Clear forgets all held keys, e.g. when the window loses focus.
func (tracker *Tracker) Clear() {
	tracker.mu.Lock()
	clear(tracker.held)
	tracker.mu.Unlock()
}

// Modifiers returns the currently held modifiers.
func (tracker *Tracker) Modifiers() fyne.KeyModifier {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	var modifiers fyne.KeyModifier
	for key := range tracker.held {
		modifiers |= modifierFor(key)
	}
	return modifiers
}

func modifierFor(key fyne.KeyName) fyne.KeyModifier {
	switch key {
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return fyne.KeyModifierControl
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return fyne.KeyModifierSuper
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return fyne.KeyModifierShift
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return fyne.KeyModifierAlt
	default:
		return 0
	}
}
