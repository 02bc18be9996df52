// Package gesture turns raw input from the view layer into move commands.
// Tap-select and drag interaction (mouse or touch) are normalized into a
// small event vocabulary consumed by a single Translator, so the puzzle
// never needs to know which device produced the input.
package gesture

import "fmt"

// NoTarget marks an event that happened over no tile.
const NoTarget = -1

// Kind identifies an input event.
type Kind int

const (
	KindNone      Kind = iota
	KindSelect         // tap or click on a tile
	KindDragStart      // press on a tile begins a drag
	KindDragOver       // pointer moved over a tile (or over nothing)
	KindDrop           // release ends the drag
	KindCancel         // abort the current gesture
)

// String returns a human-readable name for the event kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindSelect:
		return "Select"
	case KindDragStart:
		return "DragStart"
	case KindDragOver:
		return "DragOver"
	case KindDrop:
		return "Drop"
	case KindCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Index is the tile under the pointer or
// cursor, or NoTarget.
type Event struct {
	Kind  Kind
	Index int
}

// Select returns a tap event on index i.
func Select(i int) Event { return Event{Kind: KindSelect, Index: i} }

// DragStart returns a drag-start event on index i.
func DragStart(i int) Event { return Event{Kind: KindDragStart, Index: i} }

// DragOver returns a drag-over event on index i.
func DragOver(i int) Event { return Event{Kind: KindDragOver, Index: i} }

// Drop returns a drop event on index i.
func Drop(i int) Event { return Event{Kind: KindDrop, Index: i} }

// Cancel returns a cancel event.
func Cancel() Event { return Event{Kind: KindCancel, Index: NoTarget} }

// String implements fmt.Stringer.
func (e Event) String() string {
	if e.Index == NoTarget {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Modality is the interaction style a session uses for its whole lifetime.
type Modality int

const (
	ModalityTap  Modality = iota // select a tile, then select its destination
	ModalityDrag                 // press, move and release (mouse or touch)
)

// String returns the config name of the modality.
func (m Modality) String() string {
	switch m {
	case ModalityTap:
		return "tap"
	case ModalityDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// accepts reports whether events of kind k belong to this modality.
func (m Modality) accepts(k Kind) bool {
	switch k {
	case KindSelect:
		return m == ModalityTap
	case KindDragStart, KindDragOver, KindDrop:
		return m == ModalityDrag
	case KindCancel:
		return true
	default:
		return false
	}
}

// ParseModality parses a configured input setting: "auto", "drag" or "tap".
func ParseModality(s string) (setting string, err error) {
	switch s {
	case "", "auto":
		return "auto", nil
	case "drag", "tap":
		return s, nil
	default:
		return "", fmt.Errorf("gesture: unknown input modality %q (want auto, drag or tap)", s)
	}
}

// ModalityFor resolves a configured setting into a modality. "auto" picks
// drag when the terminal reports pointer events and tap otherwise.
func ModalityFor(setting string, pointerAvailable bool) Modality {
	switch setting {
	case "drag":
		return ModalityDrag
	case "tap":
		return ModalityTap
	}
	if pointerAvailable {
		return ModalityDrag
	}
	return ModalityTap
}
