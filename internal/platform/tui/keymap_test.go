package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"lowercase letter", runeKey("a"), core.Guess("a")},
		{"uppercase letter", runeKey("Q"), core.Guess("Q")},
		{"cyrillic letter", runeKey("ж"), core.Guess("ж")},
		{"digit", runeKey("7"), core.Input{}},
		{"punctuation", runeKey("!"), core.Input{}},
		{"pasted text", runeKey("abc"), core.Input{}},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, core.Input{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionConfirm}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.Input{Action: core.ActionBack}},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.Input{Action: core.ActionRestart}},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.Input{Action: core.ActionScreenshot}},
		{"help", runeKey("?"), core.Input{Action: core.ActionHelp}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestPickerKeys(t *testing.T) {
	keys := NewKeyMapper().Picker

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, keys.Up},
		{runeKey("k"), keys.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{runeKey("j"), keys.Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, keys.Play},
		{tea.KeyMsg{Type: tea.KeyTab}, keys.Scores},
		{tea.KeyMsg{Type: tea.KeyEsc}, keys.Quit},
		{runeKey("q"), keys.Quit},
	}

	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%q should match %q", tt.msg.String(), tt.binding.Help().Desc)
		}
	}

	for _, b := range []key.Binding{keys.Up, keys.Down, keys.Play, keys.Scores, keys.Quit} {
		if key.Matches(runeKey("x"), b) {
			t.Errorf("x should not match %q", b.Help().Desc)
		}
	}
}

func TestScoreboardKeys(t *testing.T) {
	keys := NewKeyMapper().Scores

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, keys.NextPack},
		{tea.KeyMsg{Type: tea.KeyRight}, keys.NextPack},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, keys.PrevPack},
		{tea.KeyMsg{Type: tea.KeyLeft}, keys.PrevPack},
		{tea.KeyMsg{Type: tea.KeyEsc}, keys.Back},
		{runeKey("q"), keys.Quit},
	}

	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%q should match %q", tt.msg.String(), tt.binding.Help().Desc)
		}
	}
}
