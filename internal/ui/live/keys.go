package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"valuesquiz/internal/quiz"
)

// keyMap lists every binding the UI responds to.
type keyMap struct {
	Important     key.Binding
	Neutral       key.Binding
	LessImportant key.Binding
	Prev          key.Binding
	Next          key.Binding
	Select        key.Binding
	Toggle        key.Binding
	Reset         key.Binding
	Yes           key.Binding
	No            key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Important:     key.NewBinding(key.WithKeys("1", "i"), key.WithHelp("1/i", "important")),
		Neutral:       key.NewBinding(key.WithKeys("2", "n"), key.WithHelp("2/n", "neutral")),
		LessImportant: key.NewBinding(key.WithKeys("3", "l"), key.WithHelp("3/l", "less important")),
		Prev:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:          key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "rate")),
		Toggle:        key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab/s", "results")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Yes:           key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:            key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// decode maps a key press to an action for the current phase.
func (k keyMap) decode(msg tea.KeyMsg, view View, state *quiz.State) Action {
	if key.Matches(msg, k.Quit) {
		return Action{Kind: ActionQuit}
	}
	if view.Confirming {
		switch {
		case key.Matches(msg, k.Yes):
			return Action{Kind: ActionConfirmReset}
		case key.Matches(msg, k.No):
			return Action{Kind: ActionCancelReset}
		}
		return Action{}
	}
	if key.Matches(msg, k.Reset) {
		return Action{Kind: ActionRequestReset}
	}
	if state.IsComplete() {
		return Action{}
	}
	switch {
	case key.Matches(msg, k.Important):
		return Action{Kind: ActionRate, Rating: quiz.Important}
	case key.Matches(msg, k.Neutral):
		return Action{Kind: ActionRate, Rating: quiz.Neutral}
	case key.Matches(msg, k.LessImportant):
		return Action{Kind: ActionRate, Rating: quiz.LessImportant}
	case key.Matches(msg, k.Prev):
		return Action{Kind: ActionFocusPrev}
	case key.Matches(msg, k.Next):
		return Action{Kind: ActionFocusNext}
	case key.Matches(msg, k.Select):
		return Action{Kind: ActionSelect}
	case key.Matches(msg, k.Toggle):
		return Action{Kind: ActionToggleResults}
	}
	return Action{}
}

// bindings returns the help entries relevant to the current view.
func (k keyMap) bindings(view View, state *quiz.State) helpKeys {
	switch {
	case view.Confirming:
		return helpKeys{k.Yes, k.No, k.Quit}
	case state.IsComplete():
		return helpKeys{k.Reset, k.Quit}
	default:
		return helpKeys{k.Important, k.Neutral, k.LessImportant, k.Select, k.Toggle, k.Reset, k.Quit}
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

// ShortHelp returns the bindings for the single line help view.
func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns the bindings as one column.
func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}
