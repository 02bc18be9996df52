package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/tiles"
)

func TestScoreboardEmpty(t *testing.T) {
	store := history.New(history.NewMemoryKV(), history.Options{})
	m := NewScoreboardModel(store, 80, 24)

	if !strings.Contains(m.View(), "No solved hands yet") {
		t.Error("empty scoreboard should show the placeholder")
	}
}

func TestScoreboardRows(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	hand := tiles.MustParseHand("1m 2m")

	store := history.New(history.NewMemoryKV(), history.Options{})
	store.Record(history.NewResult(hand, 3, 4*time.Second, now.Add(-2*time.Hour)))
	store.Record(history.NewResult(hand, 1, 2*time.Second, now.Add(-time.Hour)))
	store.Record(history.NewResult(hand, 5, 10*time.Second, now.Add(-time.Minute)))

	m := NewScoreboardModel(store, 80, 24)
	m.now = func() time.Time { return now }
	m.updateTableRows()

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// most recent first; the 1-move solve is the best
	if rows[0][1] != "5" || rows[1][0] != "2*" || rows[2][0] != "3" {
		t.Errorf("unexpected rows: %v", rows)
	}
	if rows[1][3] != "2.00" {
		t.Errorf("score column = %q, expected 2.00", rows[1][3])
	}
	if rows[1][4] != "1 hour ago" {
		t.Errorf("when column = %q, expected %q", rows[1][4], "1 hour ago")
	}
	if !strings.Contains(m.View(), "3 solved") {
		t.Error("stats line missing")
	}
}

func TestScoreboardKeys(t *testing.T) {
	store := history.New(history.NewMemoryKV(), history.Options{})

	m := NewScoreboardModel(store, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should close a standalone scoreboard")
	}

	m.embedded = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd != nil {
		t.Error("esc in an embedded scoreboard should hand control back")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
