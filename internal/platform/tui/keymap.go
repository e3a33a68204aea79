package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the configuration so they can be remapped in YAML.
type KeyMap struct {
	actions []core.Action
	binds   map[core.Action]key.Binding

	Screenshot key.Binding
	Help       key.Binding
	ForceQuit  key.Binding
}

var actionHelp = map[core.Action]string{
	core.ActionLeftUp:    "left up",
	core.ActionLeftDown:  "left down",
	core.ActionRightUp:   "right up",
	core.ActionRightDown: "right down",
	core.ActionStart:     "start",
	core.ActionQuit:      "quit",
}

// NewKeyMap builds a key map from configured bindings. Actions missing from
// kb fall back to the defaults.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	defaults := config.DefaultKeyBindings()
	km := KeyMap{
		actions: core.Actions,
		binds:   make(map[core.Action]key.Binding, len(core.Actions)),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}

	for _, a := range core.Actions {
		keys, ok := kb[a.String()]
		if !ok || len(keys) == 0 {
			keys = defaults[a.String()]
		}
		km.binds[a] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), actionHelp[a]),
		)
	}
	return km
}

// helpKeys formats key names for the help line, e.g. "a/w" or "space".
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// Lookup returns the action bound to msg, or ActionNone.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Action {
	for _, a := range k.actions {
		if key.Matches(msg, k.binds[a]) {
			return a
		}
	}
	return core.ActionNone
}

// Binding returns the binding of an action.
func (k KeyMap) Binding(a core.Action) key.Binding {
	return k.binds[a]
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.binds[core.ActionStart], k.binds[core.ActionQuit], k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.binds[core.ActionLeftUp], k.binds[core.ActionLeftDown]},
		{k.binds[core.ActionRightUp], k.binds[core.ActionRightDown]},
		{k.binds[core.ActionStart], k.binds[core.ActionQuit], k.Screenshot, k.ForceQuit},
	}
}
