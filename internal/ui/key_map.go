package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	reload   key.Binding
	favorite key.Binding
	watch    key.Binding
	remove   key.Binding
	nextView key.Binding
	logout   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		watch:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watch later")),
		remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		nextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		logout:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.reload, k.favorite, k.watch},
		{k.remove, k.nextView, k.logout, k.quit},
	}
}
