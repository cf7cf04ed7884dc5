// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pager shows long command output, such as room history, in a
// scrollable full-screen view.
package pager

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Quit     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	HalfUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "half page up"),
	),
	HalfDown: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "half page down"),
	),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// chromeHeight is the number of lines taken by the title and footer.
const chromeHeight = 2

// Model is the bubbletea model for the pager.
type Model struct {
	title    string
	content  string
	keys     keyMap
	viewport viewport.Model
	ready    bool
}

// NewModel returns a pager over content. The view starts at the bottom,
// where the newest history lines are.
func NewModel(title, content string) Model {
	return Model{title: title, content: content, keys: defaultKeys}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		height := max(message.Height-chromeHeight, 1)
		model.viewport.Width = message.Width
		model.viewport.Height = height
		model.viewport.SetContent(model.content)
		if !model.ready {
			model.viewport.GotoBottom()
			model.ready = true
		}
		return model, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Top):
			model.viewport.GotoTop()
			return model, nil
		case key.Matches(message, model.keys.Bottom):
			model.viewport.GotoBottom()
			return model, nil
		case key.Matches(message, model.keys.HalfUp):
			model.viewport.HalfViewUp()
			return model, nil
		case key.Matches(message, model.keys.HalfDown):
			model.viewport.HalfViewDown()
			return model, nil
		}
	}

	var command tea.Cmd
	model.viewport, command = model.viewport.Update(message)
	return model, command
}

func (model Model) View() string {
	if !model.ready {
		return "loading…"
	}
	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  q quit  g/G top/bottom", model.viewport.ScrollPercent()*100))
	return titleStyle.Render(model.title) + "\n" + model.viewport.View() + "\n" + footer
}

// Run shows content in the alternate screen until the user quits.
func Run(title, content string) error {
	program := tea.NewProgram(NewModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
