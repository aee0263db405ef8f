package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ntris/internal/core"
)

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionHardDrop, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"a moves left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, false},
		{"d moves right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight, false},
		{"s soft drops", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown, false},
		{"w rotates", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionRotate, false},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{"P pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")}, core.ActionPause, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"Q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, core.ActionQuit, true},
		{"unmapped key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
		{"tab unmapped", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.want {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.want)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.msg.String(), isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if quit {
		t.Error("Left should not be a quit request")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("Frame should contain ActionLeft after mapping left key")
	}

	// Unmapped keys leave the frame alone
	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, &frame)
	if frame.Has(core.ActionLeft) || frame.Has(core.ActionNone) {
		t.Error("Unmapped key should not set any action")
	}

	// Multiple keys accumulate within one frame
	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionRotate) {
		t.Error("Frame should accumulate multiple actions")
	}

	quit = km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame)
	if !quit {
		t.Error("ctrl+c should be a quit request")
	}
}
