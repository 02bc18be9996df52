package gesture

import "github.com/vovakirdan/riipai/internal/tiles"

// Side tells the view where a dragged tile would land relative to the
// tile under the pointer.
type Side int

const (
	SideNone   Side = iota
	SideBefore      // leading edge: target is left of the source
	SideAfter       // trailing edge: target is right of the source
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideBefore:
		return "before"
	case SideAfter:
		return "after"
	default:
		return "none"
	}
}

// Indicator is the drop feedback for an in-progress drag.
type Indicator struct {
	Target int
	Side   Side
}

// Translator converts input events for one modality into moves.
// At most one gesture is in flight; it is not safe for concurrent use.
type Translator struct {
	modality Modality
	size     int

	selected int // tap mode: selected index or NoTarget

	dragging bool
	source   int
	over     int
}

// NewTranslator creates a translator for a hand of the given size.
func NewTranslator(m Modality, size int) *Translator {
	t := &Translator{modality: m, size: size}
	t.Reset()
	return t
}

// Modality returns the modality the translator was built for.
func (t *Translator) Modality() Modality {
	return t.modality
}

// Reset discards any in-flight gesture.
func (t *Translator) Reset() {
	t.selected = NoTarget
	t.dragging = false
	t.source = NoTarget
	t.over = NoTarget
}

func (t *Translator) inRange(i int) bool {
	return i >= 0 && i < t.size
}

// Handle consumes one event. It returns the resulting move and true when
// the event completes a gesture with a distinct source and target.
// Events that belong to the other modality are ignored.
func (t *Translator) Handle(ev Event) (tiles.Move, bool) {
	if !t.modality.accepts(ev.Kind) {
		return tiles.Move{}, false
	}

	switch ev.Kind {
	case KindCancel:
		t.Reset()

	case KindSelect:
		return t.handleSelect(ev.Index)

	case KindDragStart:
		// A new drag replaces whatever was in flight.
		t.Reset()
		if t.inRange(ev.Index) {
			t.dragging = true
			t.source = ev.Index
		}

	case KindDragOver:
		if !t.dragging {
			return tiles.Move{}, false
		}
		if t.inRange(ev.Index) {
			t.over = ev.Index
		} else {
			t.over = NoTarget
		}

	case KindDrop:
		if !t.dragging {
			return tiles.Move{}, false
		}
		source := t.source
		t.Reset()
		if t.inRange(ev.Index) && ev.Index != source {
			return tiles.Move{From: source, To: ev.Index}, true
		}
	}

	return tiles.Move{}, false
}

func (t *Translator) handleSelect(i int) (tiles.Move, bool) {
	if !t.inRange(i) {
		return tiles.Move{}, false
	}
	switch {
	case t.selected == NoTarget:
		t.selected = i
	case t.selected == i:
		t.selected = NoTarget
	default:
		from := t.selected
		t.selected = NoTarget
		return tiles.Move{From: from, To: i}, true
	}
	return tiles.Move{}, false
}

// Selected returns the tap-selected index, if any.
func (t *Translator) Selected() (int, bool) {
	return t.selected, t.selected != NoTarget
}

// Dragging returns the drag source, if a drag is in progress.
func (t *Translator) Dragging() (int, bool) {
	return t.source, t.dragging
}

// DropIndicator returns where the dragged tile would land. The side only
// drives visual feedback; the move itself follows splice order.
func (t *Translator) DropIndicator() Indicator {
	if !t.dragging || t.over == NoTarget || t.over == t.source {
		return Indicator{Target: NoTarget, Side: SideNone}
	}
	if t.over < t.source {
		return Indicator{Target: t.over, Side: SideBefore}
	}
	return Indicator{Target: t.over, Side: SideAfter}
}
