package gesture

import (
	"testing"

	"github.com/vovakirdan/riipai/internal/tiles"
)

// feed sends events in order and collects every emitted move.
func feed(tr *Translator, events ...Event) []tiles.Move {
	var moves []tiles.Move
	for _, ev := range events {
		if m, ok := tr.Handle(ev); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func TestTapSelect(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		expected []tiles.Move
		selected int
	}{
		{
			name:     "select then target",
			events:   []Event{Select(2), Select(5)},
			expected: []tiles.Move{{From: 2, To: 5}},
			selected: NoTarget,
		},
		{
			name:     "select records selection",
			events:   []Event{Select(4)},
			expected: nil,
			selected: 4,
		},
		{
			name:     "tap same tile clears selection",
			events:   []Event{Select(3), Select(3)},
			expected: nil,
			selected: NoTarget,
		},
		{
			name:     "two moves in a row",
			events:   []Event{Select(0), Select(12), Select(7), Select(1)},
			expected: []tiles.Move{{From: 0, To: 12}, {From: 7, To: 1}},
			selected: NoTarget,
		},
		{
			name:     "out of range tap ignored",
			events:   []Event{Select(1), Select(13)},
			expected: nil,
			selected: 1,
		},
		{
			name:     "tap over nothing ignored",
			events:   []Event{Select(NoTarget)},
			expected: nil,
			selected: NoTarget,
		},
		{
			name:     "cancel clears selection",
			events:   []Event{Select(1), Cancel(), Select(2)},
			expected: nil,
			selected: 2,
		},
		{
			name:     "drag events ignored in tap mode",
			events:   []Event{DragStart(1), Drop(4)},
			expected: nil,
			selected: NoTarget,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTranslator(ModalityTap, 13)
			moves := feed(tr, tc.events...)
			if len(moves) != len(tc.expected) {
				t.Fatalf("got moves %v, expected %v", moves, tc.expected)
			}
			for i := range moves {
				if moves[i] != tc.expected[i] {
					t.Errorf("move %d = %v, expected %v", i, moves[i], tc.expected[i])
				}
			}
			sel, _ := tr.Selected()
			if sel != tc.selected {
				t.Errorf("Selected() = %d, expected %d", sel, tc.selected)
			}
		})
	}
}

func TestDrag(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		expected []tiles.Move
	}{
		{
			name:     "drag and drop on target",
			events:   []Event{DragStart(1), DragOver(2), DragOver(3), Drop(3)},
			expected: []tiles.Move{{From: 1, To: 3}},
		},
		{
			name:     "drop without drag-over",
			events:   []Event{DragStart(4), Drop(0)},
			expected: []tiles.Move{{From: 4, To: 0}},
		},
		{
			name:     "drop on source",
			events:   []Event{DragStart(2), DragOver(5), DragOver(2), Drop(2)},
			expected: nil,
		},
		{
			name:     "drop over nothing",
			events:   []Event{DragStart(2), DragOver(5), Drop(NoTarget)},
			expected: nil,
		},
		{
			name:     "drop without drag",
			events:   []Event{Drop(3)},
			expected: nil,
		},
		{
			name:     "cancel aborts drag",
			events:   []Event{DragStart(1), DragOver(6), Cancel(), Drop(6)},
			expected: nil,
		},
		{
			name:     "restart drag resets source",
			events:   []Event{DragStart(1), DragStart(8), Drop(1)},
			expected: []tiles.Move{{From: 8, To: 1}},
		},
		{
			name:     "drag start out of range",
			events:   []Event{DragStart(20), Drop(1)},
			expected: nil,
		},
		{
			name:     "tap events ignored in drag mode",
			events:   []Event{Select(1), Select(2)},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTranslator(ModalityDrag, 13)
			moves := feed(tr, tc.events...)
			if len(moves) != len(tc.expected) {
				t.Fatalf("got moves %v, expected %v", moves, tc.expected)
			}
			for i := range moves {
				if moves[i] != tc.expected[i] {
					t.Errorf("move %d = %v, expected %v", i, moves[i], tc.expected[i])
				}
			}
			if _, dragging := tr.Dragging(); dragging {
				last := tc.events[len(tc.events)-1]
				if last.Kind == KindDrop || last.Kind == KindCancel {
					t.Error("drag state should be cleared after drop or cancel")
				}
			}
		})
	}
}

func TestDropIndicator(t *testing.T) {
	tr := NewTranslator(ModalityDrag, 13)

	if ind := tr.DropIndicator(); ind.Side != SideNone {
		t.Errorf("no drag: side = %v, expected none", ind.Side)
	}

	tr.Handle(DragStart(5))
	if ind := tr.DropIndicator(); ind.Side != SideNone {
		t.Errorf("not over a tile yet: side = %v, expected none", ind.Side)
	}

	tr.Handle(DragOver(2))
	if ind := tr.DropIndicator(); ind.Side != SideBefore || ind.Target != 2 {
		t.Errorf("over 2 from 5: got %+v, expected before 2", ind)
	}

	tr.Handle(DragOver(9))
	if ind := tr.DropIndicator(); ind.Side != SideAfter || ind.Target != 9 {
		t.Errorf("over 9 from 5: got %+v, expected after 9", ind)
	}

	tr.Handle(DragOver(5))
	if ind := tr.DropIndicator(); ind.Side != SideNone {
		t.Errorf("over source: side = %v, expected none", ind.Side)
	}

	tr.Handle(DragOver(NoTarget))
	if ind := tr.DropIndicator(); ind.Side != SideNone || ind.Target != NoTarget {
		t.Errorf("over nothing: got %+v, expected none", ind)
	}
}

func TestModalityFor(t *testing.T) {
	tests := []struct {
		setting  string
		pointer  bool
		expected Modality
	}{
		{"auto", true, ModalityDrag},
		{"auto", false, ModalityTap},
		{"drag", false, ModalityDrag},
		{"tap", true, ModalityTap},
	}

	for _, tc := range tests {
		if got := ModalityFor(tc.setting, tc.pointer); got != tc.expected {
			t.Errorf("ModalityFor(%q, %v) = %v, expected %v", tc.setting, tc.pointer, got, tc.expected)
		}
	}
}

func TestParseModality(t *testing.T) {
	for _, s := range []string{"", "auto", "drag", "tap"} {
		if _, err := ParseModality(s); err != nil {
			t.Errorf("ParseModality(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseModality("swipe"); err == nil {
		t.Error("ParseModality(\"swipe\") should fail")
	}
}
