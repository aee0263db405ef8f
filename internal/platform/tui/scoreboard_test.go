package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ntris/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardKeyTransitions(t *testing.T) {
	tests := []struct {
		name          string
		msg           tea.KeyMsg
		wantPlayAgain bool
		wantQuitting  bool
	}{
		{"enter plays again", tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)

			updated, cmd := m.Update(tt.msg)
			got := updated.(ScoreboardModel)

			if got.WantsPlayAgain() != tt.wantPlayAgain {
				t.Errorf("WantsPlayAgain() = %v, want %v", got.WantsPlayAgain(), tt.wantPlayAgain)
			}
			if got.IsQuitting() != tt.wantQuitting {
				t.Errorf("IsQuitting() = %v, want %v", got.IsQuitting(), tt.wantQuitting)
			}

			if cmd == nil {
				t.Fatal("expected a quit command, got nil")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected the command to produce tea.QuitMsg")
			}
		})
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := newTestStore(t)
	for _, s := range []struct {
		score, level, lines int
	}{
		{900, 5, 42},
		{500, 3, 21},
		{100, 1, 4},
	} {
		if _, err := store.SaveScore("tetris", s.score, s.level, s.lines); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "tetris", "Tetris", 80, 24)
	out := m.View()

	for _, want := range []string{"HIGH SCORES - Tetris", "Runs: 3", "Best: 900", "#1", "900"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardEmptyState(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)
	out := m.View()

	if !strings.Contains(out, "No scores recorded yet.") {
		t.Error("View() should show the empty state without a store")
	}
	if strings.Contains(out, "Runs:") {
		t.Error("View() should not show a stats line without a store")
	}
}

func TestScoreboardScroll(t *testing.T) {
	store := newTestStore(t)
	for score := 100; score <= 500; score += 100 {
		if _, err := store.SaveScore("tetris", score, 1, 0); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "tetris", "Tetris", 80, 24)
	if m.table.Cursor() != 0 {
		t.Fatalf("cursor = %d before scrolling, want 0", m.table.Cursor())
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	got := updated.(ScoreboardModel)
	if got.table.Cursor() != 1 {
		t.Errorf("cursor = %d after down, want 1", got.table.Cursor())
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(ScoreboardModel)

	if got.width != 120 || got.height != 40 {
		t.Errorf("size = %dx%d after resize, want 120x40", got.width, got.height)
	}
	if got.help.Width != 120 {
		t.Errorf("help width = %d after resize, want 120", got.help.Width)
	}
}
