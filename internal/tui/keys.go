package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Render    key.Binding
	Focus     key.Binding
	FocusBack key.Binding
	Canvas    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetZoom key.Binding
	Home      key.Binding
	Table     key.Binding
	Files     key.Binding
	License   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Render:    key.NewBinding(key.WithKeys("ctrl+r", "r"), key.WithHelp("ctrl+r", "render")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next input")),
		FocusBack: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev input")),
		Canvas:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "canvas")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Left:      key.NewBinding(key.WithKeys("left", "h")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("↑↓←→", "pan")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_")),
		ResetZoom: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset zoom")),
		Home:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "home")),
		Table:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "records")),
		Files:     key.NewBinding(key.WithKeys("f", "ctrl+o"), key.WithHelp("f", "open file")),
		License:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "license")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Render, k.Focus, k.Right, k.ZoomIn, k.ResetZoom, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Render, k.Focus, k.FocusBack, k.Canvas},
		{k.Right, k.ZoomIn, k.ResetZoom, k.Home},
		{k.Table, k.Files, k.License, k.Help, k.Quit},
	}
}
