package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the dashboard keybindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Back   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
	Filter key.Binding
	All    key.Binding
	Active key.Binding
	Done   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding

	DeleteProject key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		DeleteProject: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete project"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "filter"),
		),
		All: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		Active: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "active"),
		),
		Done: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "completed"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// projectKeys and taskKeys implement help.KeyMap for each screen.
type projectKeys struct{ k KeyMap }

func (p projectKeys) ShortHelp() []key.Binding {
	return []key.Binding{p.k.Open, p.k.Add, p.k.Delete, p.k.Help, p.k.Quit}
}

func (p projectKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{p.k.Up, p.k.Down, p.k.Open},
		{p.k.Add, p.k.Delete, p.k.Reload},
		{p.k.Help, p.k.Quit},
	}
}

type taskKeys struct{ k KeyMap }

func (t taskKeys) ShortHelp() []key.Binding {
	return []key.Binding{t.k.Toggle, t.k.Add, t.k.Edit, t.k.Delete, t.k.Filter, t.k.Back, t.k.Help}
}

func (t taskKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{t.k.Up, t.k.Down, t.k.Toggle},
		{t.k.Add, t.k.Edit, t.k.Delete},
		{t.k.Filter, t.k.All, t.k.Active, t.k.Done},
		{t.k.DeleteProject, t.k.Reload, t.k.Back, t.k.Help, t.k.Quit},
	}
}

type inputKeys struct{ k KeyMap }

func (i inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Confirm, i.k.Cancel}
}

func (i inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{i.ShortHelp()}
}
