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
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cybrota/avltree/avl"
)

type ColorScheme struct {
	Root        lipgloss.Color
	Balanced    lipgloss.Color
	Leaning     lipgloss.Color
	Unbalanced  lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background", low background numbers are dark
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Root:        lipgloss.Color("4"),
		Balanced:    lipgloss.Color("2"),
		Leaning:     lipgloss.Color("3"),
		Unbalanced:  lipgloss.Color("1"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Root:        lipgloss.Color("14"),
		Balanced:    lipgloss.Color("2"),
		Leaning:     lipgloss.Color("11"),
		Unbalanced:  lipgloss.Color("9"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("14"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
	}
}

// NewColorScheme picks the scheme matching the detected terminal mode.
func NewColorScheme() *ColorScheme {
	if detectTerminalMode() == TerminalModeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

// balanceColor maps a balance factor onto the scheme: 0 is balanced,
// ±1 is leaning and anything else violates the AVL bound.
func (cs *ColorScheme) balanceColor(bf int) lipgloss.Color {
	switch {
	case bf == 0:
		return cs.Balanced
	case bf == 1 || bf == -1:
		return cs.Leaning
	default:
		return cs.Unbalanced
	}
}

// NodeLabeler returns a label function for avl.Tree.Fprint. With
// plain set it produces the same text without any escape sequences.
func NodeLabeler(cs *ColorScheme, plain bool) func(n *avl.Node) string {
	return func(n *avl.Node) string {
		key := fmt.Sprintf("%d", n.Key())
		stats := fmt.Sprintf("h=%d bf=%+d", n.Height(), n.BalanceFactor())
		if plain {
			return key + " " + stats
		}
		keyStyle := lipgloss.NewStyle().Bold(true).Foreground(cs.Text)
		if n.Parent() == nil {
			keyStyle = keyStyle.Foreground(cs.Root)
		}
		statsStyle := lipgloss.NewStyle().Foreground(cs.balanceColor(n.BalanceFactor()))
		return keyStyle.Render(key) + " " + statsStyle.Render(stats)
	}
}

// isTerminal reports whether f is attached to a terminal; colour output
// is only produced for terminals.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
