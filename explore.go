// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles(cs *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cs.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cs.Border),
		Title: lipgloss.NewStyle().
			Foreground(cs.Root).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(cs.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(cs.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(cs.Balanced).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(cs.Unbalanced).
			Bold(true),
	}
}

// Model is the explorer state
type Model struct {
	ready bool

	input        textinput.Model
	treeViewport viewport.Model
	helpViewport viewport.Model
	focusOnTree  bool

	session *Session
	cfg     *Config
	scheme  *ColorScheme

	status    string
	statusErr bool
	quitting  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func InitialModel(s *Session, cfg *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 1"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(48),
	)

	// the alt screen owns the terminal; results go to the status line
	s.SetLogger(zerolog.Nop())

	scheme := NewColorScheme()
	m := Model{
		input:           ti,
		treeViewport:    viewport.New(0, 0),
		helpViewport:    viewport.New(0, 0),
		session:         s,
		cfg:             cfg,
		scheme:          scheme,
		styles:          NewStyles(scheme),
		glamourRenderer: glamourRenderer,
		status:          "type help for the list of commands",
	}
	m.input.PromptStyle = m.styles.InputPrompt
	m.renderHelp()
	m.refreshTree()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		case "ctrl+y":
			m.copyRecord()
			return m, nil
		case "enter":
			if m.focusOnTree {
				return m, nil
			}
			line := m.input.Value()
			m.input.SetValue("")
			if m.execute(line) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		if m.focusOnTree {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// execute runs one command line and reports whether the explorer
// should quit.
func (m *Model) execute(line string) bool {
	action, err := ParseCommandLine(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return false
	}

	switch action.Kind {
	case ActionNone:
		return false
	case ActionQuit:
		return true
	case ActionHelp:
		m.setStatus("commands are listed on the right", false)
		return false
	case ActionClear:
		m.session.Reset()
		m.setStatus("tree cleared", false)
	case ActionLoad:
		opts := m.cfg.Driver
		opts.Progress = false
		script, err := LoadScript(action.Path, opts)
		if err != nil {
			m.setStatus(err.Error(), true)
			return false
		}
		outcomes, err := RunScript(m.session, script, opts)
		skipped := countSkipped(outcomes)
		switch {
		case err != nil:
			m.setStatus(err.Error(), true)
		case skipped > 0:
			m.setStatus(fmt.Sprintf("applied %d operations from %s, %d skipped", len(outcomes)-skipped, action.Path, skipped), false)
		default:
			m.setStatus(fmt.Sprintf("applied %d operations from %s", len(outcomes), action.Path), false)
		}
	case ActionApply:
		var results []string
		for _, op := range action.Ops {
			outcome, err := m.session.Apply(op)
			if err != nil {
				m.setStatus(err.Error(), true)
				m.refreshTree()
				return false
			}
			results = append(results, outcome.String())
		}
		m.setStatus(strings.Join(results, ", "), false)
	}

	m.refreshTree()
	return false
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) refreshTree() {
	text := m.session.Render("explore", NodeLabeler(m.scheme, false))
	m.treeViewport.SetContent(text)
}

func (m *Model) renderHelp() {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(explorerHelp); err == nil {
			m.helpViewport.SetContent(rendered)
			return
		}
	}
	m.helpViewport.SetContent(explorerHelp)
}

// copyRecord puts the JSON record of the current tree on the clipboard.
func (m *Model) copyRecord() {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, m.session.Tree().Record(), FormatJSON, m.cfg.Output.Indent); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		m.setStatus(fmt.Sprintf("failed to copy record: %v", err), true)
		return
	}
	m.setStatus("record copied to clipboard", false)
}

func (m *Model) updateLayout() {
	treeWidth := (m.width * 6 / 10) - 1
	helpWidth := m.width - treeWidth - 3
	bodyHeight := m.height - 9

	m.input.Width = treeWidth - 6
	m.treeViewport.Width = treeWidth - 2
	m.treeViewport.Height = bodyHeight
	m.helpViewport.Width = helpWidth - 2
	m.helpViewport.Height = bodyHeight + 3
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	treeWidth := (m.width * 6 / 10) - 1
	helpWidth := m.width - treeWidth - 3

	inputStyle, treeStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnTree {
		inputStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(treeWidth).
		Padding(0, 1).
		Render(m.input.View())

	tree := m.session.Tree()
	treeTitle := fmt.Sprintf(" Tree  size %d  height %d ", tree.Size(), tree.Height())
	treeBox := treeStyle.
		Width(treeWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	helpBox := m.styles.BorderBlurred.
		Width(helpWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" Help "),
			m.helpViewport.View(),
		))

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox),
		helpBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status)),
		m.renderKeyHelp(),
	)
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "ctrl+y", "esc"}
	descs := []string{"run command", "scroll tree", "copy record", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea application
func runExplorer(s *Session, cfg *Config) error {
	program := tea.NewProgram(
		InitialModel(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
