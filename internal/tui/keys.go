package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ActionHandler handles a key event. Returning nil consumes it.
type ActionHandler func(evt *tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Label       string
	Description string
	Action      ActionHandler
	Visible     bool
}

// binding identifies a key; Rune is only set for tcell.KeyRune.
type binding struct {
	key  tcell.Key
	rune rune
}

// KeyActions manages keyboard bindings in registration order.
type KeyActions struct {
	mx      sync.RWMutex
	actions map[binding]KeyAction
	order   []binding
}

// NewKeyActions creates an empty key actions manager.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(map[binding]KeyAction)}
}

// Add binds a special key.
func (k *KeyActions) Add(key tcell.Key, action KeyAction) {
	k.add(binding{key: key}, action)
}

// AddRune binds a character key.
func (k *KeyActions) AddRune(r rune, action KeyAction) {
	k.add(binding{key: tcell.KeyRune, rune: r}, action)
}

func (k *KeyActions) add(b binding, action KeyAction) {
	k.mx.Lock()
	defer k.mx.Unlock()

	if _, exists := k.actions[b]; !exists {
		k.order = append(k.order, b)
	}
	k.actions[b] = action
}

// Get retrieves the action bound to the key of evt.
func (k *KeyActions) Get(evt *tcell.EventKey) (KeyAction, bool) {
	b := binding{key: evt.Key()}
	if b.key == tcell.KeyRune {
		b.rune = evt.Rune()
	}

	k.mx.RLock()
	defer k.mx.RUnlock()
	action, ok := k.actions[b]

	return action, ok
}

// Handle runs the action bound to evt, if any.
func (k *KeyActions) Handle(evt *tcell.EventKey) *tcell.EventKey {
	action, ok := k.Get(evt)
	if !ok || action.Action == nil {
		return evt
	}

	return action.Action(evt)
}

// Hints returns visible action hints for the status bar.
func (k *KeyActions) Hints() []string {
	k.mx.RLock()
	defer k.mx.RUnlock()

	hints := make([]string, 0, len(k.order))
	for _, b := range k.order {
		if action := k.actions[b]; action.Visible {
			hints = append(hints, "[yellow]"+action.Label+"[-] "+action.Description)
		}
	}

	return hints
}

// HelpEntry is one line of the help screen.
type HelpEntry struct {
	Key         string
	Description string
}

// Help lists every described binding in registration order.
func (k *KeyActions) Help() []HelpEntry {
	k.mx.RLock()
	defer k.mx.RUnlock()

	entries := make([]HelpEntry, 0, len(k.order))
	for _, b := range k.order {
		action := k.actions[b]
		if action.Description == "" {
			continue
		}
		entries = append(entries, HelpEntry{Key: action.Label, Description: action.Description})
	}

	return entries
}
