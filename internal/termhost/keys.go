package termhost

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"padnav/internal/input"
)

// keyMap holds the host's own keys. Everything else goes to the navigator.
type keyMap struct {
	Quit     key.Binding
	Bindings key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Bindings: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "binding sheet"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bindings, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keyTypes = map[tea.KeyType]input.Key{
	tea.KeyUp:        input.KeyUp,
	tea.KeyDown:      input.KeyDown,
	tea.KeyLeft:      input.KeyLeft,
	tea.KeyRight:     input.KeyRight,
	tea.KeyEnter:     input.KeyEnter,
	tea.KeySpace:     input.KeySpace,
	tea.KeyTab:       input.KeyTab,
	tea.KeyEsc:       input.KeyEscape,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeyInsert:    input.KeyInsert,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
	tea.KeyF2:        input.KeyF2,
	tea.KeyF3:        input.KeyF3,
	tea.KeyF4:        input.KeyF4,
	tea.KeyF5:        input.KeyF5,
	tea.KeyF6:        input.KeyF6,
	tea.KeyF7:        input.KeyF7,
	tea.KeyF8:        input.KeyF8,
	tea.KeyF9:        input.KeyF9,
	tea.KeyF10:       input.KeyF10,
	tea.KeyF11:       input.KeyF11,
	tea.KeyF12:       input.KeyF12,
}

// translateKey maps a terminal key event onto a physical key. Modifier
// combinations other than plain runes are not representable and are
// dropped.
func translateKey(msg tea.KeyMsg) (input.Key, bool) {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 || msg.Alt {
			return input.KeyUnknown, false
		}
		return input.KeyFromRune(msg.Runes[0])
	}
	k, ok := keyTypes[msg.Type]
	return k, ok
}

// toolkitEvent reports whether the toolkit handles k natively
func toolkitEvent(k input.Key) bool {
	switch k {
	case input.KeyTab, input.KeyEscape, input.KeyEnter, input.KeySpace:
		return true
	}
	return false
}
